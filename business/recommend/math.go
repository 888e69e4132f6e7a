package recommend

import "math"

// cosineSimilarity compares two sparse preference vectors keyed by brand.
// Returns 0 when the vectors share no brand.
func cosineSimilarity(a, b map[uint64]float64) float64 {
	dot := 0.0
	common := false
	for k, av := range a {
		if bv, ok := b[k]; ok {
			dot += av * bv
			common = true
		}
	}
	if !common {
		return 0
	}

	magA := 0.0
	for _, v := range a {
		magA += v * v
	}
	magB := 0.0
	for _, v := range b {
		magB += v * v
	}
	magA = math.Sqrt(magA)
	magB = math.Sqrt(magB)

	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (magA * magB)
}

func maxScore(scores map[uint64]float64) float64 {
	max := 0.0
	for _, v := range scores {
		if v > max {
			max = v
		}
	}
	return max
}

// normalizeByMax rescales scores into [0,1]. A zero max leaves them untouched.
func normalizeByMax(scores map[uint64]float64) map[uint64]float64 {
	max := maxScore(scores)
	if max == 0 {
		return scores
	}
	out := make(map[uint64]float64, len(scores))
	for id, v := range scores {
		out[id] = v / max
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
