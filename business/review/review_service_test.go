//go:build !integration

package review

import (
	"context"
	"errors"
	"strings"
	"testing"

	"myLaptopHub/domain"
)

type fakeReviewRepo struct {
	reviews []domain.Review
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	review.ID = uint64(len(f.reviews) + 1)
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeReviewRepo) FindByLaptop(ctx context.Context, laptopID uint64) ([]domain.Review, error) {
	var out []domain.Review
	for _, r := range f.reviews {
		if r.LaptopID == laptopID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Exists(ctx context.Context, responderName, review string) (bool, error) {
	for _, r := range f.reviews {
		if r.ResponderName == responderName && r.Review == review {
			return true, nil
		}
	}
	return false, nil
}

type fakeLaptopRepo struct {
	laptops []domain.Laptop
}

func (f *fakeLaptopRepo) FindByID(ctx context.Context, id uint64) (domain.Laptop, error) {
	for _, l := range f.laptops {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Laptop{}, errors.New("laptop not found")
}

func (f *fakeLaptopRepo) FindByBrandSeriesModel(ctx context.Context, brandID uint64, series, model string) (domain.Laptop, error) {
	for _, l := range f.laptops {
		if l.BrandID == brandID && l.Series == series && l.Model == model {
			return l, nil
		}
	}
	return domain.Laptop{}, errors.New("laptop not found")
}

func (f *fakeLaptopRepo) Create(ctx context.Context, laptop *domain.Laptop) error {
	laptop.ID = uint64(len(f.laptops) + 1)
	f.laptops = append(f.laptops, *laptop)
	return nil
}

type fakeBrandRepo struct {
	brands map[string]domain.Brand
}

func newFakeBrandRepo() *fakeBrandRepo {
	return &fakeBrandRepo{brands: make(map[string]domain.Brand)}
}

func (f *fakeBrandRepo) FindOrCreate(ctx context.Context, name string) (domain.Brand, error) {
	if b, ok := f.brands[name]; ok {
		return b, nil
	}
	b := domain.Brand{ID: uint64(len(f.brands) + 1), Name: name}
	f.brands[name] = b
	return b, nil
}

func newTestService() (*reviewService, *fakeReviewRepo, *fakeLaptopRepo) {
	reviews := &fakeReviewRepo{}
	laptops := &fakeLaptopRepo{laptops: []domain.Laptop{
		{ID: 1, BrandID: 1, Series: "ROG Strix", Model: "G15"},
	}}
	return NewReviewService(reviews, laptops, newFakeBrandRepo()), reviews, laptops
}

func TestCreateReview(t *testing.T) {
	svc, repo, _ := newTestService()

	created, err := svc.CreateReview(context.Background(), &domain.Review{
		LaptopID:      1,
		ResponderName: "Budi",
		Rating:        5,
		Review:        "mantap buat game AAA",
	})
	if err != nil {
		t.Fatalf("CreateReview() error = %v", err)
	}
	if created.ID == 0 || len(repo.reviews) != 1 {
		t.Errorf("review not stored: %+v", repo.reviews)
	}
}

func TestCreateReviewValidation(t *testing.T) {
	svc, _, _ := newTestService()

	cases := []struct {
		name   string
		review domain.Review
	}{
		{"missing responder", domain.Review{LaptopID: 1, Rating: 4, Review: "oke"}},
		{"rating too low", domain.Review{LaptopID: 1, ResponderName: "Budi", Rating: 0, Review: "oke"}},
		{"rating too high", domain.Review{LaptopID: 1, ResponderName: "Budi", Rating: 6, Review: "oke"}},
		{"missing text", domain.Review{LaptopID: 1, ResponderName: "Budi", Rating: 4}},
		{"unknown laptop", domain.Review{LaptopID: 99, ResponderName: "Budi", Rating: 4, Review: "oke"}},
	}

	for _, tc := range cases {
		r := tc.review
		if _, err := svc.CreateReview(context.Background(), &r); err == nil {
			t.Errorf("CreateReview(%s) should fail", tc.name)
		}
	}
}

func TestGetReviewsByLaptop(t *testing.T) {
	svc, _, _ := newTestService()

	_, _ = svc.CreateReview(context.Background(), &domain.Review{
		LaptopID: 1, ResponderName: "Budi", Rating: 5, Review: "bagus untuk gaming",
	})

	got, err := svc.GetReviewsByLaptop(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetReviewsByLaptop() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("review count = %d, want 1", len(got))
	}
}

const importCSV = `date,responder,brand,series,model,cpu,ram,storage,gpu,price,rating,review
2024-03-01,Budi,Asus,ROG Strix,G15,AMD Ryzen 7 6800H,16GB,1TB SSD,NVIDIA RTX 3060,18000000,5,mantap buat game AAA
2024-03-02,Sari,Lenovo,ThinkPad,E14,Intel Core i5-1235U,8GB,512GB SSD,Intel Iris Xe,9000000,4,cocok untuk kerja kantoran
2024-03-02,Budi,Asus,ROG Strix,G15,AMD Ryzen 7 6800H,16GB,1TB SSD,NVIDIA RTX 3060,18000000,5,mantap buat game AAA
2024-03-03,Andi,Acer,Aspire,5,AMD Ryzen 5 5500U,8GB,512GB SSD,AMD Radeon Graphics,8000000,9,rating rusak
`

func TestImportCSV(t *testing.T) {
	svc, reviews, laptops := newTestService()

	summary, err := svc.ImportCSV(context.Background(), strings.NewReader(importCSV))
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}

	if summary.Rows != 4 {
		t.Errorf("rows = %d, want 4", summary.Rows)
	}
	if summary.Imported != 2 {
		t.Errorf("imported = %d, want 2", summary.Imported)
	}
	if summary.Duplicates != 1 {
		t.Errorf("duplicates = %d, want 1", summary.Duplicates)
	}
	if summary.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", summary.Skipped)
	}

	if len(reviews.reviews) != 2 {
		t.Errorf("stored reviews = %d, want 2", len(reviews.reviews))
	}

	// the ThinkPad was not in the catalog and must be created on the fly
	var created bool
	for _, l := range laptops.laptops {
		if l.Model == "E14" && l.CPU == "Intel Core i5-1235U" && l.Price == 9_000_000 {
			created = true
		}
	}
	if !created {
		t.Errorf("imported laptop missing from catalog: %+v", laptops.laptops)
	}
}

func TestImportCSVMissingColumn(t *testing.T) {
	svc, _, _ := newTestService()

	bad := "date,responder,brand\n2024-03-01,Budi,Asus\n"
	if _, err := svc.ImportCSV(context.Background(), strings.NewReader(bad)); err == nil {
		t.Error("ImportCSV(missing columns) should fail")
	}
}
