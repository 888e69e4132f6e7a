package review

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"myLaptopHub/domain"
	"myLaptopHub/pkg/logger"
)

// ReviewRepository contract interface
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	FindByLaptop(ctx context.Context, laptopID uint64) ([]domain.Review, error)
	Exists(ctx context.Context, responderName, review string) (bool, error)
}

// LaptopRepository contract interface
type LaptopRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Laptop, error)
	FindByBrandSeriesModel(ctx context.Context, brandID uint64, series, model string) (domain.Laptop, error)
	Create(ctx context.Context, laptop *domain.Laptop) error
}

// BrandRepository contract interface
type BrandRepository interface {
	FindOrCreate(ctx context.Context, name string) (domain.Brand, error)
}

type reviewService struct {
	reviewRepo ReviewRepository
	laptopRepo LaptopRepository
	brandRepo  BrandRepository
}

func NewReviewService(reviewRepo ReviewRepository, laptopRepo LaptopRepository, brandRepo BrandRepository) *reviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		laptopRepo: laptopRepo,
		brandRepo:  brandRepo,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create review")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if review.ResponderName == "" {
		logger.Error("invalid review data: responder name is required")
		return nil, errors.New("responder name is required")
	}
	if review.Rating < 1 || review.Rating > 5 {
		logger.Error("invalid review data: rating out of range")
		return nil, errors.New("rating must be between 1 and 5")
	}
	if review.Review == "" {
		logger.Error("invalid review data: review text is required")
		return nil, errors.New("review text is required")
	}

	if _, err := s.laptopRepo.FindByID(ctx, review.LaptopID); err != nil {
		logger.Error("laptop not found for review", err)
		return nil, errors.New("laptop not found")
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		logger.Error("failed to create review", err)
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	logger.Info("review created successfully", "laptop_id", review.LaptopID)

	return review, nil
}

func (s *reviewService) GetReviewsByLaptop(ctx context.Context, laptopID uint64) ([]domain.Review, error) {
	if laptopID == 0 {
		logger.Error("invalid laptop id when loading reviews")
		return nil, errors.New("invalid laptop id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when loading reviews")
		return nil, fmt.Errorf("context error: %w", err)
	}

	reviews, err := s.reviewRepo.FindByLaptop(ctx, laptopID)
	if err != nil {
		logger.Error("failed to load reviews", err)
		return nil, err
	}

	return reviews, nil
}

// ImportSummary reports what an import run did per row.
type ImportSummary struct {
	Rows       int `json:"rows"`
	Imported   int `json:"imported"`
	Duplicates int `json:"duplicates"`
	Skipped    int `json:"skipped"`
}

// importColumns are the headers an import file must carry. Spec columns
// beyond these (date, cpu, ram, storage, gpu, price, series) are
// optional and only used when the laptop has to be created on the fly.
var importColumns = []string{"responder", "brand", "model", "rating", "review"}

const importDateLayout = "2006-01-02"

// ImportCSV loads survey responses in bulk. Unknown brands and laptops
// are created as rows reference them; a row whose (responder, review)
// pair is already stored counts as a duplicate and is not re-imported.
func (s *reviewService) ImportCSV(ctx context.Context, r io.Reader) (ImportSummary, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when importing reviews")
		return ImportSummary{}, fmt.Errorf("context error: %w", err)
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		logger.Error("failed to read import header", err)
		return ImportSummary{}, errors.New("invalid import file: missing header")
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range importColumns {
		if _, ok := cols[required]; !ok {
			logger.Error("import header missing column", "column", required)
			return ImportSummary{}, fmt.Errorf("invalid import file: missing column %q", required)
		}
	}

	var summary ImportSummary
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Error("failed to read import row", err)
			return summary, fmt.Errorf("failed to read import row: %w", err)
		}
		summary.Rows++

		if err := s.importRow(ctx, cols, record, &summary); err != nil {
			logger.Warn("import row skipped", "row", summary.Rows, "error", err)
			summary.Skipped++
		}
	}

	logger.Info("review import finished",
		"rows", summary.Rows,
		"imported", summary.Imported,
		"duplicates", summary.Duplicates,
		"skipped", summary.Skipped,
	)

	return summary, nil
}

func (s *reviewService) importRow(ctx context.Context, cols map[string]int, record []string, summary *ImportSummary) error {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	responder := field("responder")
	reviewText := field("review")
	if responder == "" || reviewText == "" {
		return errors.New("responder and review are required")
	}

	rating, err := strconv.Atoi(field("rating"))
	if err != nil || rating < 1 || rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}

	brandName := field("brand")
	model := field("model")
	if brandName == "" || model == "" {
		return errors.New("brand and model are required")
	}

	exists, err := s.reviewRepo.Exists(ctx, responder, reviewText)
	if err != nil {
		return fmt.Errorf("failed to check for duplicate: %w", err)
	}
	if exists {
		summary.Duplicates++
		return nil
	}

	brand, err := s.brandRepo.FindOrCreate(ctx, brandName)
	if err != nil {
		return fmt.Errorf("failed to resolve brand: %w", err)
	}

	laptop, err := s.laptopRepo.FindByBrandSeriesModel(ctx, brand.ID, field("series"), model)
	if err != nil {
		price, _ := strconv.ParseFloat(field("price"), 64)
		laptop = domain.Laptop{
			BrandID: brand.ID,
			Series:  field("series"),
			Model:   model,
			CPU:     field("cpu"),
			GPU:     field("gpu"),
			RAM:     field("ram"),
			Storage: field("storage"),
			Price:   price,
		}
		if err := s.laptopRepo.Create(ctx, &laptop); err != nil {
			return fmt.Errorf("failed to create laptop: %w", err)
		}
	}

	review := domain.Review{
		LaptopID:      laptop.ID,
		ResponderName: responder,
		Rating:        rating,
		Review:        reviewText,
	}
	if date, err := time.Parse(importDateLayout, field("date")); err == nil {
		review.CreatedAt = date
	}

	if err := s.reviewRepo.Create(ctx, &review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	summary.Imported++

	return nil
}
