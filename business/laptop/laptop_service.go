package laptop

import (
	"context"
	"errors"
	"fmt"
	"math"

	"myLaptopHub/domain"
	"myLaptopHub/pkg/logger"
)

// LaptopRepository contract interface
type LaptopRepository interface {
	Create(ctx context.Context, laptop *domain.Laptop) error
	FindByID(ctx context.Context, id uint64) (domain.Laptop, error)
	FindAll(ctx context.Context) ([]domain.Laptop, error)
	Update(ctx context.Context, laptop *domain.Laptop) error
	Delete(ctx context.Context, id uint64) error
}

// BrandRepository contract interface
type BrandRepository interface {
	FindOrCreate(ctx context.Context, name string) (domain.Brand, error)
	FindAll(ctx context.Context) ([]domain.Brand, error)
}

// ReviewRepository contract interface
type ReviewRepository interface {
	FindByLaptop(ctx context.Context, laptopID uint64) ([]domain.Review, error)
}

type laptopService struct {
	laptopRepo LaptopRepository
	brandRepo  BrandRepository
	reviewRepo ReviewRepository
}

func NewLaptopService(laptopRepo LaptopRepository, brandRepo BrandRepository, reviewRepo ReviewRepository) *laptopService {
	return &laptopService{
		laptopRepo: laptopRepo,
		brandRepo:  brandRepo,
		reviewRepo: reviewRepo,
	}
}

func (s *laptopService) GetAllLaptops(ctx context.Context) ([]domain.Laptop, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all laptops")
		return nil, fmt.Errorf("context error: %w", err)
	}

	laptops, err := s.laptopRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to find all laptops", err)
		return nil, err
	}

	return laptops, nil
}

func (s *laptopService) GetLaptopByID(ctx context.Context, id uint64) (*domain.Laptop, error) {
	if id == 0 {
		logger.Error("invalid laptop id")
		return nil, errors.New("invalid laptop id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get laptop by id")
		return nil, fmt.Errorf("context error: %w", err)
	}

	laptop, err := s.laptopRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find laptop by id", err)
		return nil, err
	}

	return &laptop, nil
}

// GetLaptopDetail is the detail-page payload: the laptop with its
// reviews and the rounded average rating.
func (s *laptopService) GetLaptopDetail(ctx context.Context, id uint64) (*domain.LaptopDetail, error) {
	laptop, err := s.GetLaptopByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByLaptop(ctx, id)
	if err != nil {
		logger.Error("failed to load laptop reviews", err)
		return nil, err
	}

	avg := 0.0
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		avg = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	}

	return &domain.LaptopDetail{
		Laptop:      *laptop,
		AvgRating:   avg,
		ReviewCount: len(reviews),
		Reviews:     reviews,
	}, nil
}

func (s *laptopService) CreateLaptop(ctx context.Context, brandName string, laptop *domain.Laptop) (*domain.Laptop, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create laptop")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateLaptop(brandName, laptop); err != nil {
		logger.Error("invalid laptop data", err)
		return nil, err
	}

	brand, err := s.brandRepo.FindOrCreate(ctx, brandName)
	if err != nil {
		logger.Error("failed to resolve brand", err)
		return nil, fmt.Errorf("failed to resolve brand: %w", err)
	}
	laptop.BrandID = brand.ID
	laptop.Brand = brand

	if err := s.laptopRepo.Create(ctx, laptop); err != nil {
		logger.Error("failed to create new laptop", err)
		return nil, fmt.Errorf("failed to create laptop: %w", err)
	}

	logger.Info("laptop created successfully", "laptop_id", laptop.ID)

	return laptop, nil
}

func (s *laptopService) UpdateLaptop(ctx context.Context, brandName string, laptop *domain.Laptop) (*domain.Laptop, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating laptop")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if laptop.ID == 0 {
		logger.Error("invalid laptop data: ID is required")
		return nil, errors.New("laptop ID is required")
	}

	if err := validateLaptop(brandName, laptop); err != nil {
		logger.Error("invalid laptop data", err)
		return nil, err
	}

	if _, err := s.laptopRepo.FindByID(ctx, laptop.ID); err != nil {
		logger.Error("laptop not found", err)
		return nil, errors.New("laptop not found")
	}

	brand, err := s.brandRepo.FindOrCreate(ctx, brandName)
	if err != nil {
		logger.Error("failed to resolve brand", err)
		return nil, fmt.Errorf("failed to resolve brand: %w", err)
	}
	laptop.BrandID = brand.ID

	if err := s.laptopRepo.Update(ctx, laptop); err != nil {
		logger.Error("failed to update laptop", err)
		return nil, fmt.Errorf("failed to update laptop: %w", err)
	}

	updated, err := s.laptopRepo.FindByID(ctx, laptop.ID)
	if err != nil {
		logger.Error("failed to fetch updated laptop", err)
		return nil, fmt.Errorf("failed to fetch updated laptop: %w", err)
	}

	logger.Info("laptop updated successfully", "laptop_id", updated.ID)

	return &updated, nil
}

func (s *laptopService) DeleteLaptop(ctx context.Context, id uint64) error {
	if id == 0 {
		logger.Error("invalid laptop id when deleting laptop")
		return errors.New("invalid laptop id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting laptop")
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.laptopRepo.FindByID(ctx, id); err != nil {
		logger.Error("laptop not found", err)
		return errors.New("laptop not found")
	}

	if err := s.laptopRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete laptop", err)
		return fmt.Errorf("failed to delete laptop: %w", err)
	}

	logger.Info("laptop deleted successfully", "laptop_id", id)

	return nil
}

func (s *laptopService) GetAllBrands(ctx context.Context) ([]domain.Brand, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all brands")
		return nil, fmt.Errorf("context error: %w", err)
	}

	brands, err := s.brandRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to find all brands", err)
		return nil, err
	}

	return brands, nil
}

func validateLaptop(brandName string, laptop *domain.Laptop) error {
	if brandName == "" {
		return errors.New("brand is required")
	}
	if laptop.Model == "" {
		return errors.New("model is required")
	}
	if laptop.Price <= 0 {
		return errors.New("price must be greater than 0")
	}
	return nil
}
