package recommend

import (
	"sort"

	"myLaptopHub/domain"
)

// BrandProfile summarizes the hardware character of a brand's lineup.
type BrandProfile struct {
	CPU string
	GPU string
	RAM string // "large" or "medium"
}

// CBFScorer scores laptops by how well they match the user's taste,
// read from their brand click history.
type CBFScorer struct {
	cfg Config
}

func NewCBFScorer(cfg Config) *CBFScorer {
	return &CBFScorer{cfg: cfg}
}

// Score returns content-based scores in [0,1]. A user with no clicks
// gets the top-rated fallback: rank-decayed scores over laptops sorted
// by average rating.
func (s *CBFScorer) Score(clicks []domain.UserClick, laptops []domain.Laptop, ratings map[uint64]domain.RatingSummary) map[uint64]float64 {
	if len(clicks) == 0 {
		return topRatedFallback(laptops, ratings)
	}

	maxClicks := 0
	for _, c := range clicks {
		if c.ClickCount > maxClicks {
			maxClicks = c.ClickCount
		}
	}
	if maxClicks == 0 {
		maxClicks = 1
	}

	brandWeights := make(map[uint64]float64, len(clicks))
	for _, c := range clicks {
		brandWeights[c.BrandID] = round2(float64(c.ClickCount) / float64(maxClicks))
	}

	profiles := buildBrandProfiles(laptops)
	prefs := featurePreferences(clicks, profiles)

	scores := make(map[uint64]float64, len(laptops))
	for _, l := range laptops {
		brandWeight := brandWeights[l.BrandID]

		rating := 0.0
		if r, ok := ratings[l.ID]; ok {
			rating = r.AvgRating
		}

		feature := featureScore(l, prefs)

		scores[l.ID] = round4(
			brandWeight*s.cfg.CBFBrandWeight +
				rating/5*s.cfg.CBFRatingWeight +
				feature*s.cfg.CBFFeatureWeight,
		)
	}
	return scores
}

func topRatedFallback(laptops []domain.Laptop, ratings map[uint64]domain.RatingSummary) map[uint64]float64 {
	sorted := append([]domain.Laptop(nil), laptops...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ratings[sorted[i].ID].AvgRating > ratings[sorted[j].ID].AvgRating
	})

	n := len(sorted)
	scores := make(map[uint64]float64, n)
	for i, l := range sorted {
		scores[l.ID] = 1 - float64(i)/float64(max(n-1, 1))
	}
	return scores
}

// The three fixed brand feature profiles.
var (
	gamingBrandProfile   = BrandProfile{CPU: CPUHighEnd, GPU: GPUDedicated, RAM: "large"}
	officeBrandProfile   = BrandProfile{CPU: CPUMidRange, GPU: GPUIntegrated, RAM: "medium"}
	balancedBrandProfile = BrandProfile{CPU: CPUBalanced, GPU: GPUBalanced, RAM: "medium"}
)

// buildBrandProfiles assigns every brand one of the three fixed
// profiles. The lineup decides the orientation: mostly dedicated GPUs
// reads as gaming, none at all as office, a mixed lineup as balanced.
func buildBrandProfiles(laptops []domain.Laptop) map[uint64]BrandProfile {
	type tally struct {
		total     int
		dedicated int
	}

	tallies := make(map[uint64]*tally)
	for _, l := range laptops {
		t := tallies[l.BrandID]
		if t == nil {
			t = &tally{}
			tallies[l.BrandID] = t
		}
		t.total++
		if classifyGPU(l.GPU) == GPUDedicated {
			t.dedicated++
		}
	}

	profiles := make(map[uint64]BrandProfile, len(tallies))
	for brandID, t := range tallies {
		switch {
		case t.dedicated*2 > t.total:
			profiles[brandID] = gamingBrandProfile
		case t.dedicated == 0:
			profiles[brandID] = officeBrandProfile
		default:
			profiles[brandID] = balancedBrandProfile
		}
	}
	return profiles
}

// featurePreferences blends the clicked brands' profiles, weighted by
// click share, and keeps the strongest value per feature.
func featurePreferences(clicks []domain.UserClick, profiles map[uint64]BrandProfile) map[string]string {
	totalClicks := 0
	for _, c := range clicks {
		totalClicks += c.ClickCount
	}
	if totalClicks == 0 {
		totalClicks = 1
	}

	accum := map[string]map[string]float64{
		"cpu": {},
		"gpu": {},
		"ram": {},
	}
	for _, c := range clicks {
		profile, ok := profiles[c.BrandID]
		if !ok {
			continue
		}
		share := float64(c.ClickCount) / float64(totalClicks)
		accum["cpu"][profile.CPU] += share
		accum["gpu"][profile.GPU] += share
		accum["ram"][profile.RAM] += share
	}

	prefs := make(map[string]string, len(accum))
	for feature, values := range accum {
		best := ""
		bestWeight := -1.0
		for value, weight := range values {
			if weight > bestWeight || (weight == bestWeight && value < best) {
				best = value
				bestWeight = weight
			}
		}
		prefs[feature] = best
	}
	return prefs
}

func featureScore(l domain.Laptop, prefs map[string]string) float64 {
	score := 0.0

	cpuTier := classifyCPUTier(l.CPU)
	switch {
	case cpuTier == prefs["cpu"]:
		score += 0.4
	case cpuExceedsPreference(cpuTier, prefs["cpu"]):
		score += 0.2
	}

	gpuType := classifyGPU(l.GPU)
	switch {
	case gpuType == prefs["gpu"]:
		score += 0.4
	case gpuType == GPUDedicated && prefs["gpu"] == GPUIntegrated:
		score += 0.2
	}

	preferredRAM := 8
	if prefs["ram"] == "large" {
		preferredRAM = 16
	}
	if extractRAM(l.RAM, 8) >= preferredRAM {
		score += 0.2
	}

	if score > 1 {
		return 1
	}
	return score
}

var cpuTierRank = map[string]int{
	CPUHighEnd:    3,
	CPUMidRange:   2,
	CPUBalanced:   1,
	CPUEntryLevel: 0,
}

// a stronger CPU still satisfies a weaker preference, at half credit
func cpuExceedsPreference(laptopTier, preferred string) bool {
	return cpuTierRank[laptopTier] > cpuTierRank[preferred]
}
