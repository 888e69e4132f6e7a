//go:build !integration

package search

import (
	"context"
	"testing"

	"myLaptopHub/business/recommend"
	"myLaptopHub/domain"
)

// ---- in-memory fakes ----

type fakeLaptopRepo struct {
	laptops []domain.Laptop
}

func (f *fakeLaptopRepo) FindAll(ctx context.Context) ([]domain.Laptop, error) {
	return f.laptops, nil
}

func (f *fakeLaptopRepo) FindByIDs(ctx context.Context, ids []uint64) ([]domain.Laptop, error) {
	byID := make(map[uint64]domain.Laptop, len(f.laptops))
	for _, l := range f.laptops {
		byID[l.ID] = l
	}
	var out []domain.Laptop
	for _, id := range ids {
		if l, ok := byID[id]; ok {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeReviewRepo struct {
	reviews []domain.Review
}

func (f *fakeReviewRepo) FindAll(ctx context.Context) ([]domain.Review, error) {
	return f.reviews, nil
}

func (f *fakeReviewRepo) RatingSummaries(ctx context.Context) (map[uint64]domain.RatingSummary, error) {
	totals := make(map[uint64]int)
	counts := make(map[uint64]int)
	for _, r := range f.reviews {
		totals[r.LaptopID] += r.Rating
		counts[r.LaptopID]++
	}
	summaries := make(map[uint64]domain.RatingSummary, len(counts))
	for id, count := range counts {
		summaries[id] = domain.RatingSummary{
			LaptopID:    id,
			AvgRating:   float64(totals[id]) / float64(count),
			ReviewCount: count,
		}
	}
	return summaries, nil
}

type fakeClickRepo struct {
	clicks []domain.UserClick
}

func (f *fakeClickRepo) FindByUser(ctx context.Context, userID uint64) ([]domain.UserClick, error) {
	var out []domain.UserClick
	for _, c := range f.clicks {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClickRepo) FindAll(ctx context.Context) ([]domain.UserClick, error) {
	return f.clicks, nil
}

// ---- fixtures ----

func searchCatalog() []domain.Laptop {
	return []domain.Laptop{
		{
			ID: 1, BrandID: 1, Brand: domain.Brand{ID: 1, Name: "Asus"},
			Series: "ROG Strix", Model: "G15",
			Description: "laptop gaming kencang",
			CPU:         "AMD Ryzen 7 6800H", GPU: "NVIDIA RTX 3060",
			RAM: "16GB", Storage: "1TB SSD", Display: "15.6 inch 144Hz",
			Price: 18_000_000,
		},
		{
			ID: 2, BrandID: 1, Brand: domain.Brand{ID: 1, Name: "Asus"},
			Series: "VivoBook", Model: "14",
			Description: "laptop harian murah",
			CPU:         "Intel Core i3-1115G4", GPU: "Intel UHD Graphics",
			RAM: "8GB", Storage: "512GB SSD", Display: "14 inch",
			Price: 7_500_000,
		},
		{
			ID: 3, BrandID: 2, Brand: domain.Brand{ID: 2, Name: "Lenovo"},
			Series: "ThinkPad", Model: "E14",
			Description: "laptop kantor tangguh",
			CPU:         "Intel Core i5-1235U", GPU: "Intel Iris Xe",
			RAM: "8GB", Storage: "512GB SSD", Display: "14 inch",
			Price: 11_000_000,
		},
		{
			ID: 4, BrandID: 3, Brand: domain.Brand{ID: 3, Name: "MSI"},
			Series: "Katana", Model: "GF66",
			Description: "laptop gaming tipis",
			CPU:         "Intel Core i7-12650H", GPU: "NVIDIA RTX 3050",
			RAM: "16GB", Storage: "512GB SSD", Display: "15.6 inch 144Hz",
			Price: 15_000_000,
		},
		{
			ID: 5, BrandID: 4, Brand: domain.Brand{ID: 4, Name: "Acer"},
			Series: "Aspire", Model: "5",
			Description: "laptop serbaguna",
			CPU:         "AMD Ryzen 5 5500U", GPU: "AMD Radeon Graphics",
			RAM: "8GB", Storage: "512GB SSD", Display: "15.6 inch",
			Price: 8_000_000,
		},
		{
			ID: 6, BrandID: 5, Brand: domain.Brand{ID: 5, Name: "HP"},
			Series: "Pavilion", Model: "14",
			Description: "laptop ringan buat kerja",
			CPU:         "Intel Core i5-1240P", GPU: "Intel Iris Xe",
			RAM: "8GB", Storage: "512GB SSD", Display: "14 inch",
			Price: 10_000_000,
		},
	}
}

func searchReviews() []domain.Review {
	return []domain.Review{
		{ID: 1, LaptopID: 1, Rating: 5, Review: "sangat baik untuk gaming berat"},
		{ID: 2, LaptopID: 1, Rating: 5, Review: "mantap buat game AAA"},
		{ID: 3, LaptopID: 2, Rating: 4, Review: "cocok untuk kuliah dan kerja"},
		{ID: 4, LaptopID: 3, Rating: 5, Review: "ideal untuk kerja kantoran"},
		{ID: 5, LaptopID: 4, Rating: 4, Review: "bagus untuk gaming di kelasnya"},
	}
}

func clickHistory() []domain.UserClick {
	return []domain.UserClick{
		{UserID: 7, BrandID: 1, ClickCount: 8},
		{UserID: 7, BrandID: 3, ClickCount: 2},
		{UserID: 8, BrandID: 1, ClickCount: 6},
		{UserID: 8, BrandID: 3, ClickCount: 3},
		{UserID: 9, BrandID: 2, ClickCount: 5},
	}
}

func newTestService(laptops []domain.Laptop, reviews []domain.Review, clicks []domain.UserClick) *searchService {
	return NewSearchService(
		&fakeLaptopRepo{laptops: laptops},
		&fakeReviewRepo{reviews: reviews},
		&fakeClickRepo{clicks: clicks},
		recommend.IdentityStemmer{},
		recommend.DefaultConfig(),
	)
}

// ---- Search ----

func TestSearchRejectsEmptyQuery(t *testing.T) {
	svc := newTestService(searchCatalog(), nil, nil)

	if _, err := svc.Search(context.Background(), 0, ""); err == nil {
		t.Fatal("Search(empty query) should fail")
	}
}

func TestSearchAnonymousUsesTFIDFOnly(t *testing.T) {
	svc := newTestService(searchCatalog(), searchReviews(), clickHistory())

	resp, err := svc.Search(context.Background(), 0, "laptop murah")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if resp.Strategy != StrategyTFIDFOnly {
		t.Errorf("strategy = %q, want %q", resp.Strategy, StrategyTFIDFOnly)
	}
	if len(resp.Results) == 0 {
		t.Fatal("expected results for generic query")
	}
}

func TestSearchBrandAndBudget(t *testing.T) {
	svc := newTestService(searchCatalog(), searchReviews(), nil)

	resp, err := svc.Search(context.Background(), 0, "laptop asus 8 juta")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if len(resp.Results) == 0 {
		t.Fatal("expected at least one result")
	}
	for _, r := range resp.Results {
		if r.Laptop.Brand.Name != "Asus" {
			t.Errorf("brand filter leaked %s into results", r.Laptop.Brand.Name)
		}
		if r.Laptop.Price < 7_000_000 || r.Laptop.Price > 9_000_000 {
			t.Errorf("price range leaked %v into results", r.Laptop.Price)
		}
	}
}

func TestSearchHardwareQueryUsesHybridSpecific(t *testing.T) {
	svc := newTestService(searchCatalog(), searchReviews(), clickHistory())

	resp, err := svc.Search(context.Background(), 7, "laptop gaming rtx 3060")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if resp.Strategy != StrategyHybridSpecific {
		t.Errorf("strategy = %q, want %q", resp.Strategy, StrategyHybridSpecific)
	}
	if len(resp.Results) == 0 {
		t.Fatal("expected results")
	}
	if resp.Results[0].Laptop.ID != 1 {
		t.Errorf("top result = laptop %d, want the RTX 3060 machine", resp.Results[0].Laptop.ID)
	}
}

func TestSearchClickedUserGeneralQueryUsesHybridGeneral(t *testing.T) {
	svc := newTestService(searchCatalog(), searchReviews(), clickHistory())

	resp, err := svc.Search(context.Background(), 7, "laptop gaming")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if resp.Strategy != StrategyHybridGeneral {
		t.Errorf("strategy = %q, want %q", resp.Strategy, StrategyHybridGeneral)
	}
}

func TestSearchSmallCatalogFallsBackToCBFTFIDF(t *testing.T) {
	// under five CF candidates the collaborative signal is not trusted
	svc := newTestService(searchCatalog()[:3], searchReviews(), clickHistory())

	resp, err := svc.Search(context.Background(), 7, "laptop murah")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if resp.Strategy != StrategyCBFTFIDF {
		t.Errorf("strategy = %q, want %q", resp.Strategy, StrategyCBFTFIDF)
	}
}

func TestSearchNoMatchesReturnsEmptyResponse(t *testing.T) {
	svc := newTestService(searchCatalog(), searchReviews(), nil)

	resp, err := svc.Search(context.Background(), 0, "smartphone flagship")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(resp.Results) != 0 {
		t.Errorf("expected empty results, got %d", len(resp.Results))
	}
}

func TestSearchResultsCarryRatings(t *testing.T) {
	svc := newTestService(searchCatalog(), searchReviews(), nil)

	resp, err := svc.Search(context.Background(), 0, "laptop gaming")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	for _, r := range resp.Results {
		if r.Laptop.ID == 1 {
			if r.AvgRating != 5.0 {
				t.Errorf("avg rating = %v, want 5.0", r.AvgRating)
			}
			if r.ReviewCount != 2 {
				t.Errorf("review count = %d, want 2", r.ReviewCount)
			}
		}
	}
}

// ---- ForYou ----

func TestForYouRequiresUser(t *testing.T) {
	svc := newTestService(searchCatalog(), searchReviews(), clickHistory())

	if _, err := svc.ForYou(context.Background(), 0, 10); err == nil {
		t.Fatal("ForYou(anonymous) should fail")
	}
}

func TestForYouPrefersClickedBrands(t *testing.T) {
	svc := newTestService(searchCatalog(), searchReviews(), clickHistory())

	resp, err := svc.ForYou(context.Background(), 7, 10)
	if err != nil {
		t.Fatalf("ForYou() error = %v", err)
	}
	if resp.Strategy != StrategyFeed {
		t.Errorf("strategy = %q, want %q", resp.Strategy, StrategyFeed)
	}
	if len(resp.Results) == 0 {
		t.Fatal("expected feed results")
	}

	// user 7 clicks Asus the most
	if got := resp.Results[0].Laptop.Brand.Name; got != "Asus" {
		t.Errorf("top feed brand = %s, want Asus", got)
	}
}

func TestForYouNoHistoryFallsBackToTopRated(t *testing.T) {
	svc := newTestService(searchCatalog(), searchReviews(), nil)

	resp, err := svc.ForYou(context.Background(), 42, 10)
	if err != nil {
		t.Fatalf("ForYou() error = %v", err)
	}
	if len(resp.Results) == 0 {
		t.Fatal("expected fallback feed")
	}

	// rank-decayed top-rated fallback keeps the best-rated first
	first := resp.Results[0]
	for _, r := range resp.Results[1:] {
		if r.AvgRating > first.AvgRating {
			t.Errorf("fallback feed out of rating order: %v before %v", first.AvgRating, r.AvgRating)
		}
	}
}

func TestForYouHonorsLimit(t *testing.T) {
	svc := newTestService(searchCatalog(), searchReviews(), clickHistory())

	resp, err := svc.ForYou(context.Background(), 7, 2)
	if err != nil {
		t.Fatalf("ForYou() error = %v", err)
	}
	if len(resp.Results) > 2 {
		t.Errorf("feed size = %d, want <= 2", len(resp.Results))
	}
}
