//go:build !integration

package recommend

import (
	"testing"

	"myLaptopHub/domain"
)

func cbfCatalog() []domain.Laptop {
	return []domain.Laptop{
		// Asus: gaming lineup
		{ID: 1, BrandID: 1, Brand: domain.Brand{ID: 1, Name: "Asus"}, Model: "ROG G15", CPU: "AMD Ryzen 7 5800H", GPU: "NVIDIA RTX 3060", RAM: "16GB"},
		{ID: 2, BrandID: 1, Brand: domain.Brand{ID: 1, Name: "Asus"}, Model: "TUF A15", CPU: "AMD Ryzen 7 4800H", GPU: "NVIDIA GTX 1650", RAM: "16GB"},
		// Lenovo: office lineup
		{ID: 3, BrandID: 2, Brand: domain.Brand{ID: 2, Name: "Lenovo"}, Model: "ThinkPad E14", CPU: "Intel Core i7-1255U", GPU: "Intel Iris Xe", RAM: "8GB"},
		{ID: 4, BrandID: 2, Brand: domain.Brand{ID: 2, Name: "Lenovo"}, Model: "IdeaPad 3", CPU: "Intel Core i7-1165G7", GPU: "Intel UHD Graphics", RAM: "8GB"},
	}
}

func cbfRatings() map[uint64]domain.RatingSummary {
	return map[uint64]domain.RatingSummary{
		1: {LaptopID: 1, AvgRating: 4.5, ReviewCount: 10},
		2: {LaptopID: 2, AvgRating: 4.0, ReviewCount: 6},
		3: {LaptopID: 3, AvgRating: 4.8, ReviewCount: 20},
		4: {LaptopID: 4, AvgRating: 3.5, ReviewCount: 3},
	}
}

func TestCBFPrefersClickedBrand(t *testing.T) {
	scorer := NewCBFScorer(DefaultConfig())

	clicks := []domain.UserClick{
		{UserID: 7, BrandID: 1, ClickCount: 9},
		{UserID: 7, BrandID: 2, ClickCount: 1},
	}

	scores := scorer.Score(clicks, cbfCatalog(), cbfRatings())

	if scores[1] <= scores[3] {
		t.Errorf("clicked-brand laptop should outrank: asus=%v lenovo=%v", scores[1], scores[3])
	}
	if scores[1] <= scores[4] {
		t.Errorf("clicked-brand laptop should outrank: asus=%v lenovo=%v", scores[1], scores[4])
	}
}

func TestCBFScoresStayInUnitRange(t *testing.T) {
	scorer := NewCBFScorer(DefaultConfig())

	clicks := []domain.UserClick{{UserID: 7, BrandID: 1, ClickCount: 5}}
	scores := scorer.Score(clicks, cbfCatalog(), cbfRatings())

	for id, score := range scores {
		if score < 0 || score > 1 {
			t.Errorf("score[%d] = %v, want within [0,1]", id, score)
		}
	}
}

func TestCBFFallbackRanksByRating(t *testing.T) {
	scorer := NewCBFScorer(DefaultConfig())

	scores := scorer.Score(nil, cbfCatalog(), cbfRatings())

	// laptop 3 has the best average rating
	if scores[3] != 1 {
		t.Errorf("top-rated fallback score = %v, want 1", scores[3])
	}
	if scores[4] != 0 {
		t.Errorf("worst-rated fallback score = %v, want 0", scores[4])
	}
	if scores[3] <= scores[1] || scores[1] <= scores[2] || scores[2] <= scores[4] {
		t.Errorf("fallback order broken: %v", scores)
	}
}

func TestBuildBrandProfiles(t *testing.T) {
	// HP: half the lineup dedicated, half integrated
	catalog := append(cbfCatalog(),
		domain.Laptop{ID: 5, BrandID: 3, Brand: domain.Brand{ID: 3, Name: "HP"}, Model: "Victus 16", CPU: "Intel Core i5-12500H", GPU: "NVIDIA RTX 3050", RAM: "16GB"},
		domain.Laptop{ID: 6, BrandID: 3, Brand: domain.Brand{ID: 3, Name: "HP"}, Model: "Pavilion 14", CPU: "Intel Core i5-1235U", GPU: "Intel Iris Xe", RAM: "8GB"},
	)

	profiles := buildBrandProfiles(catalog)

	asus := profiles[1]
	if asus != gamingBrandProfile {
		t.Errorf("asus profile = %+v, want high_end/dedicated/large", asus)
	}

	lenovo := profiles[2]
	if lenovo != officeBrandProfile {
		t.Errorf("lenovo profile = %+v, want mid_range/integrated/medium", lenovo)
	}

	hp := profiles[3]
	if hp != balancedBrandProfile {
		t.Errorf("hp profile = %+v, want balanced/balanced/medium", hp)
	}
}

func TestFeatureScoreCompatibility(t *testing.T) {
	prefs := map[string]string{"cpu": CPUMidRange, "gpu": GPUIntegrated, "ram": "medium"}

	// stronger CPU and GPU than preferred: half credit each, RAM met
	l := domain.Laptop{CPU: "AMD Ryzen 9 6900H", GPU: "NVIDIA RTX 3070", RAM: "32GB"}
	got := featureScore(l, prefs)
	want := 0.2 + 0.2 + 0.2
	if got != want {
		t.Errorf("featureScore = %v, want %v", got, want)
	}

	// exact match on everything
	exact := domain.Laptop{CPU: "Intel Core i7-1255U", GPU: "Intel Iris Xe", RAM: "8GB"}
	if got := featureScore(exact, prefs); got != 1.0 {
		t.Errorf("featureScore(exact) = %v, want 1.0", got)
	}
}
