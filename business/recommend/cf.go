package recommend

import (
	"math"

	"myLaptopHub/domain"
)

// CFScorer scores laptops from the click behaviour of similar users.
// Users are compared by the cosine similarity of their brand click
// vectors.
type CFScorer struct {
	cfg Config
}

func NewCFScorer(cfg Config) *CFScorer {
	return &CFScorer{cfg: cfg}
}

// Score returns collaborative scores normalized to [0,1]. A user with
// no click history gets nil; the caller decides the fallback.
func (s *CFScorer) Score(userID uint64, clicksByUser map[uint64][]domain.UserClick, laptops []domain.Laptop, ratings map[uint64]domain.RatingSummary) map[uint64]float64 {
	target := clickVector(clicksByUser[userID])
	if len(target) == 0 {
		return nil
	}

	similarities := s.userSimilarities(userID, target, clicksByUser)
	maxSim := 0.0
	for _, sim := range similarities {
		if sim > maxSim {
			maxSim = sim
		}
	}
	if maxSim == 0 {
		maxSim = 1
	}

	maxClick := 0.0
	for _, v := range target {
		if v > maxClick {
			maxClick = v
		}
	}
	if maxClick == 0 {
		maxClick = 1
	}

	vectors := make(map[uint64]map[uint64]float64, len(similarities))
	maxClicksByUser := make(map[uint64]float64, len(similarities))
	for otherID := range similarities {
		vec := clickVector(clicksByUser[otherID])
		vectors[otherID] = vec
		userMax := 0.0
		for _, v := range vec {
			if v > userMax {
				userMax = v
			}
		}
		if userMax == 0 {
			userMax = 1
		}
		maxClicksByUser[otherID] = userMax
	}

	scores := make(map[uint64]float64, len(laptops))
	for _, l := range laptops {
		brandWeight := target[l.BrandID] / maxClick

		rating := s.cfg.CFDefaultRating
		reviewCount := 0
		if r, ok := ratings[l.ID]; ok && r.ReviewCount > 0 {
			rating = r.AvgRating
			reviewCount = r.ReviewCount
		}

		base := brandWeight*s.cfg.CFBrandWeight +
			rating/5*s.cfg.CFRatingWeight +
			s.popularity(rating, reviewCount)*s.cfg.CFPopularityWeight

		bonus := s.similarityBonus(l.BrandID, similarities, vectors, maxClicksByUser, maxSim)

		scores[l.ID] = math.Min(base+bonus, 1)
	}

	return normalizeByMax(scores)
}

func (s *CFScorer) userSimilarities(userID uint64, target map[uint64]float64, clicksByUser map[uint64][]domain.UserClick) map[uint64]float64 {
	similarities := make(map[uint64]float64)
	for otherID, clicks := range clicksByUser {
		if otherID == userID {
			continue
		}
		sim := cosineSimilarity(target, clickVector(clicks))
		if sim > s.cfg.CFSimilarityFloor {
			similarities[otherID] = sim
		}
	}
	return similarities
}

// similarityBonus adds the endorsement of similar users who clicked
// this brand, each contribution scaled by their click intensity and
// relative similarity.
func (s *CFScorer) similarityBonus(brandID uint64, similarities map[uint64]float64, vectors map[uint64]map[uint64]float64, maxClicksByUser map[uint64]float64, maxSim float64) float64 {
	bonus := 0.0
	for otherID, sim := range similarities {
		brandClicks := vectors[otherID][brandID]
		if brandClicks == 0 {
			continue
		}
		contribution := (brandClicks / maxClicksByUser[otherID]) * (sim / maxSim)
		bonus += contribution * s.cfg.CFSimilarityBonus
	}
	return bonus
}

// popularity = rating share + saturating review volume share
func (s *CFScorer) popularity(avgRating float64, reviewCount int) float64 {
	ratingComponent := avgRating / 5 * s.cfg.PopularityRatingShare
	volumeComponent := s.cfg.PopularityVolumeShare *
		math.Log(float64(reviewCount)+1) / math.Log(s.cfg.PopularitySaturation)
	return math.Min(ratingComponent+volumeComponent, 1)
}

func clickVector(clicks []domain.UserClick) map[uint64]float64 {
	if len(clicks) == 0 {
		return nil
	}
	vec := make(map[uint64]float64, len(clicks))
	for _, c := range clicks {
		vec[c.BrandID] = float64(c.ClickCount)
	}
	return vec
}
