package search

import (
	"sort"
	"strings"

	"myLaptopHub/domain"
)

// blendWeights distributes the final score between the three scorers.
type blendWeights struct {
	TFIDF float64
	CBF   float64
	CF    float64
}

var generalWeights = blendWeights{TFIDF: 0.5, CBF: 0.3, CF: 0.2}

// specificWeights shifts weight toward the lexical score the more
// concrete the query is. tfidfWeight is 0.6 for specific queries and
// 0.7 when explicit hardware is named.
func specificWeights(tfidfWeight float64) blendWeights {
	return blendWeights{
		TFIDF: tfidfWeight,
		CBF:   0.3 - (tfidfWeight-0.5)*0.4,
		CF:    0.2 - (tfidfWeight-0.5)*0.2,
	}
}

// queryPriorityWeights splits between the lexical score and a single
// personalization score when CF has too little data.
func queryPriorityWeights(tfidfWeight float64) blendWeights {
	return blendWeights{TFIDF: tfidfWeight, CBF: 1 - tfidfWeight}
}

const brandMismatchPenalty = 0.3

// combineScores blends the component scores for every TF-IDF candidate.
// Laptops from the wrong brand keep a fraction of their score instead
// of vanishing, so a thin brand catalog still fills the page.
func combineScores(tfidf, cbf, cf map[uint64]float64, w blendWeights, byID map[uint64]domain.Laptop, brandFilter string) map[uint64]domain.LaptopScore {
	combined := make(map[uint64]domain.LaptopScore, len(tfidf))
	for id, tfidfScore := range tfidf {
		cbfScore := cbf[id]
		cfScore := cf[id]

		penalty := 1.0
		if brandFilter != "" && !brandMatches(byID[id], brandFilter) {
			penalty = brandMismatchPenalty
		}

		combined[id] = domain.LaptopScore{
			LaptopID: id,
			Score:    (tfidfScore*w.TFIDF + cbfScore*w.CBF + cfScore*w.CF) * penalty,
			TFIDF:    tfidfScore,
			CBF:      cbfScore,
			CF:       cfScore,
		}
	}
	return combined
}

// applyBrandFilter keeps only matching laptops and boosts them 20%.
func applyBrandFilter(scores map[uint64]domain.LaptopScore, byID map[uint64]domain.Laptop, brand string) map[uint64]domain.LaptopScore {
	filtered := make(map[uint64]domain.LaptopScore, len(scores))
	for id, s := range scores {
		if !brandMatches(byID[id], brand) {
			continue
		}
		s.Score *= 1.2
		filtered[id] = s
	}
	return filtered
}

func brandMatches(l domain.Laptop, brand string) bool {
	return strings.Contains(strings.ToLower(l.Brand.Name), brand)
}

const (
	staticScoreThreshold   = 0.1
	adaptiveThresholdShare = 0.15
	minKeptResults         = 3
)

// filterLowScores drops weak matches using an adaptive threshold but
// always keeps the best three so the page is never empty after a
// successful match.
func filterLowScores(scores map[uint64]domain.LaptopScore) map[uint64]domain.LaptopScore {
	if len(scores) == 0 {
		return scores
	}

	maxScore := 0.0
	for _, s := range scores {
		if s.Score > maxScore {
			maxScore = s.Score
		}
	}

	threshold := staticScoreThreshold
	if adaptive := maxScore * adaptiveThresholdShare; adaptive > threshold {
		threshold = adaptive
	}

	filtered := make(map[uint64]domain.LaptopScore)
	for id, s := range scores {
		if s.Score >= threshold {
			filtered[id] = s
		}
	}

	if len(filtered) < minKeptResults {
		for _, s := range topScores(scores, minKeptResults) {
			filtered[s.LaptopID] = s
		}
	}
	return filtered
}

// topScores orders by score descending, laptop id ascending on ties.
func topScores(scores map[uint64]domain.LaptopScore, limit int) []domain.LaptopScore {
	ranked := make([]domain.LaptopScore, 0, len(scores))
	for _, s := range scores {
		ranked = append(ranked, s)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].LaptopID < ranked[j].LaptopID
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// normalizeScores rescales raw scores into [0,1] by the maximum.
func normalizeScores(scores map[uint64]float64) map[uint64]float64 {
	maxScore := 0.0
	for _, v := range scores {
		if v > maxScore {
			maxScore = v
		}
	}
	if maxScore == 0 {
		return scores
	}
	normalized := make(map[uint64]float64, len(scores))
	for id, v := range scores {
		normalized[id] = v / maxScore
	}
	return normalized
}
