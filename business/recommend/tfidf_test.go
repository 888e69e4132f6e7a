//go:build !integration

package recommend

import (
	"fmt"
	"strings"
	"testing"

	"myLaptopHub/domain"
)

func testCatalog() []domain.Laptop {
	return []domain.Laptop{
		{
			ID:          1,
			BrandID:     1,
			Brand:       domain.Brand{ID: 1, Name: "Asus"},
			Series:      "ROG Strix",
			Model:       "G15",
			Description: "laptop gaming dengan pendingin besar",
			CPU:         "Intel Core i7-12700H",
			GPU:         "NVIDIA RTX 3060",
			RAM:         "16GB DDR5",
			Storage:     "1TB SSD",
			Display:     "15.6 inch 144Hz",
			Price:       18_000_000,
		},
		{
			ID:          2,
			BrandID:     2,
			Brand:       domain.Brand{ID: 2, Name: "Lenovo"},
			Series:      "ThinkPad",
			Model:       "E14",
			Description: "laptop kantor ringan",
			CPU:         "Intel Core i5-1235U",
			GPU:         "Intel Iris Xe",
			RAM:         "8GB DDR4",
			Storage:     "512GB SSD",
			Display:     "14 inch",
			Price:       9_000_000,
		},
		{
			ID:          3,
			BrandID:     1,
			Brand:       domain.Brand{ID: 1, Name: "Asus"},
			Series:      "VivoBook",
			Model:       "14",
			Description: "laptop murah buat sekolah",
			CPU:         "Intel Celeron N4500",
			GPU:         "Intel UHD Graphics",
			RAM:         "4GB DDR4",
			Storage:     "256GB SSD",
			Display:     "14 inch",
			Price:       5_000_000,
		},
	}
}

func newTestTFIDF() *TFIDFScorer {
	return NewTFIDFScorer(NewTokenizer(IdentityStemmer{}), DefaultConfig())
}

func TestTFIDFGamingQueryRanksGamingLaptopOnly(t *testing.T) {
	scorer := newTestTFIDF()

	scores := scorer.Score("laptop gaming", testCatalog(), nil, nil)

	if _, ok := scores[1]; !ok {
		t.Fatalf("gaming laptop missing from scores: %v", scores)
	}
	// integrated GPUs take the hard penalty and fail the positive filter
	if _, ok := scores[2]; ok {
		t.Errorf("office laptop should be filtered for gaming query, got %v", scores[2])
	}
	if _, ok := scores[3]; ok {
		t.Errorf("budget laptop should be filtered for gaming query, got %v", scores[3])
	}
}

func TestTFIDFOfficeQueryHardFilter(t *testing.T) {
	scorer := newTestTFIDF()

	scores := scorer.Score("laptop untuk kantor", testCatalog(), nil, nil)

	if _, ok := scores[1]; ok {
		t.Errorf("gaming chassis must not pass the office filter, got %v", scores[1])
	}
	if _, ok := scores[2]; !ok {
		t.Errorf("integrated-GPU office laptop missing: %v", scores)
	}
}

func TestTFIDFPositiveReviewBoostsScore(t *testing.T) {
	scorer := newTestTFIDF()
	catalog := testCatalog()

	without := scorer.Score("laptop render", catalog, nil, nil)

	reviews := map[uint64][]domain.Review{
		1: {{ID: 1, LaptopID: 1, Rating: 5, Review: "sangat baik untuk editing video, render cepat"}},
	}
	with := scorer.Score("laptop render", catalog, reviews, nil)

	if with[1] <= without[1] {
		t.Errorf("positive review should raise score: with=%v without=%v", with[1], without[1])
	}
}

func TestTFIDFNegativeReviewIgnored(t *testing.T) {
	scorer := newTestTFIDF()
	catalog := testCatalog()

	base := scorer.Score("laptop murah", catalog, nil, nil)

	reviews := map[uint64][]domain.Review{
		3: {{ID: 1, LaptopID: 3, Rating: 2, Review: "tidak cocok untuk gaming, murah murah murah"}},
	}
	got := scorer.Score("laptop murah", catalog, reviews, nil)

	if got[3] != base[3] {
		t.Errorf("negative review must not contribute terms: got=%v base=%v", got[3], base[3])
	}
}

func TestTFIDFStrictGPUFilterAndExactModelRanking(t *testing.T) {
	scorer := newTestTFIDF()
	catalog := append(testCatalog(), domain.Laptop{
		ID:          4,
		BrandID:     3,
		Brand:       domain.Brand{ID: 3, Name: "MSI"},
		Series:      "Katana",
		Model:       "GF66",
		Description: "laptop gaming kencang",
		CPU:         "Intel Core i7-12650H",
		GPU:         "NVIDIA RTX 3050",
		RAM:         "16GB DDR4",
		Storage:     "512GB SSD",
		Display:     "15.6 inch 144Hz",
		Price:       15_000_000,
	})

	scores := scorer.Score("gaming rtx 3060", catalog, nil, nil)

	for _, id := range []uint64{2, 3} {
		if _, ok := scores[id]; ok {
			t.Errorf("laptop %d has no rtx GPU and must be rejected outright, got %v", id, scores[id])
		}
	}
	if _, ok := scores[4]; !ok {
		t.Fatalf("same-family RTX 3050 should survive the hard filter: %v", scores)
	}
	if scores[1] <= scores[4] {
		t.Errorf("exact RTX 3060 must outrank RTX 3050: %v vs %v", scores[1], scores[4])
	}
}

func TestTFIDFStrictRAMFilter(t *testing.T) {
	scorer := newTestTFIDF()

	scores := scorer.Score("laptop 16gb ram", testCatalog(), nil, nil)

	if _, ok := scores[1]; !ok {
		t.Fatalf("16GB laptop missing from scores: %v", scores)
	}
	for _, id := range []uint64{2, 3} {
		if _, ok := scores[id]; ok {
			t.Errorf("laptop %d has less than 16GB and must be rejected, got %v", id, scores[id])
		}
	}
}

func TestTFIDFImplausiblePraiseIgnored(t *testing.T) {
	scorer := newTestTFIDF()
	catalog := testCatalog()

	base := scorer.Score("laptop murah", catalog, nil, nil)

	// a Celeron with 4GB cannot back up editing praise
	reviews := map[uint64][]domain.Review{
		3: {{ID: 1, LaptopID: 3, Rating: 5, Review: "bagus untuk editing video"}},
	}
	got := scorer.Score("laptop murah", catalog, reviews, nil)

	if got[3] != base[3] {
		t.Errorf("implausible praise must not contribute terms: got=%v base=%v", got[3], base[3])
	}
}

func TestTFIDFPriceRangeExcludesLaptops(t *testing.T) {
	scorer := newTestTFIDF()

	price := &domain.PriceRange{Min: 4_000_000, Max: 6_000_000}
	scores := scorer.Score("laptop murah", testCatalog(), nil, price)

	if _, ok := scores[1]; ok {
		t.Errorf("18jt laptop must be excluded by 4-6jt range, got %v", scores[1])
	}
	if _, ok := scores[3]; !ok {
		t.Errorf("5jt laptop missing from price-filtered scores: %v", scores)
	}
}

func TestTFIDFKeepsTopKSurvivorsOnly(t *testing.T) {
	scorer := newTestTFIDF()
	k := DefaultConfig().LexicalTopK

	// identical specs, so only the repeated description term orders them
	var catalog []domain.Laptop
	for i := 1; i <= k+5; i++ {
		catalog = append(catalog, domain.Laptop{
			ID:          uint64(i),
			BrandID:     1,
			Brand:       domain.Brand{ID: 1, Name: "Axioo"},
			Series:      "Pongo",
			Model:       fmt.Sprintf("P%d", i),
			Description: strings.TrimSpace(strings.Repeat("tangguh ", i)),
			CPU:         "Intel Celeron N4020",
			GPU:         "Intel UHD Graphics",
			RAM:         "8GB DDR4",
			Storage:     "256GB SSD",
			Display:     "14 inch",
			Price:       7_000_000,
		})
	}

	scores := scorer.Score("tangguh", catalog, nil, nil)

	if len(scores) != k {
		t.Fatalf("survivors = %d, want %d", len(scores), k)
	}
	// more repeats means a higher tf, so ids 1..5 rank last and fall off
	for id := uint64(1); id <= 5; id++ {
		if _, ok := scores[id]; ok {
			t.Errorf("laptop %d ranked below the cutoff and must be dropped, got %v", id, scores[id])
		}
	}
	if _, ok := scores[uint64(k+5)]; !ok {
		t.Errorf("top-ranked laptop missing from survivors: %v", scores)
	}
}

func TestTFIDFEmptyCatalog(t *testing.T) {
	scorer := newTestTFIDF()
	if scores := scorer.Score("laptop", nil, nil, nil); len(scores) != 0 {
		t.Fatalf("empty catalog should yield no scores, got %v", scores)
	}
}

func TestCalculateIDFSmoothing(t *testing.T) {
	idf := calculateIDF([][]string{
		{"laptop", "gaming"},
		{"laptop", "kantor"},
	})

	// a term in every doc still gets a positive idf
	if idf["laptop"] <= 0 {
		t.Errorf("idf(common term) = %v, want > 0", idf["laptop"])
	}
	if idf["gaming"] <= idf["laptop"] {
		t.Errorf("rarer term should outweigh common term: gaming=%v laptop=%v", idf["gaming"], idf["laptop"])
	}
}
