package click

import (
	"context"
	"errors"
	"fmt"

	"myLaptopHub/domain"
	"myLaptopHub/pkg/logger"
)

// ClickRepository contract interface
type ClickRepository interface {
	Increment(ctx context.Context, userID, brandID uint64) error
	FindByUser(ctx context.Context, userID uint64) ([]domain.UserClick, error)
}

// LaptopRepository contract interface
type LaptopRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Laptop, error)
}

type clickService struct {
	clickRepo  ClickRepository
	laptopRepo LaptopRepository
}

func NewClickService(clickRepo ClickRepository, laptopRepo LaptopRepository) *clickService {
	return &clickService{
		clickRepo:  clickRepo,
		laptopRepo: laptopRepo,
	}
}

// RecordClick counts a laptop view against the laptop's brand. Brand
// clicks are the signal the recommenders personalize on.
func (s *clickService) RecordClick(ctx context.Context, userID, laptopID uint64) error {
	if userID == 0 {
		logger.Error("invalid user id when recording click")
		return errors.New("invalid user id")
	}
	if laptopID == 0 {
		logger.Error("invalid laptop id when recording click")
		return errors.New("invalid laptop id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when recording click")
		return fmt.Errorf("context error: %w", err)
	}

	laptop, err := s.laptopRepo.FindByID(ctx, laptopID)
	if err != nil {
		logger.Error("laptop not found for click", err)
		return errors.New("laptop not found")
	}

	if err := s.clickRepo.Increment(ctx, userID, laptop.BrandID); err != nil {
		logger.Error("failed to record click", err)
		return fmt.Errorf("failed to record click: %w", err)
	}

	logger.Debug("click recorded",
		"user_id", userID,
		"laptop_id", laptopID,
		"brand_id", laptop.BrandID,
	)

	return nil
}

// GetUserClicks returns the caller's per-brand click history.
func (s *clickService) GetUserClicks(ctx context.Context, userID uint64) ([]domain.UserClick, error) {
	if userID == 0 {
		logger.Error("invalid user id when loading clicks")
		return nil, errors.New("invalid user id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when loading clicks")
		return nil, fmt.Errorf("context error: %w", err)
	}

	clicks, err := s.clickRepo.FindByUser(ctx, userID)
	if err != nil {
		logger.Error("failed to load user clicks", err)
		return nil, err
	}

	return clicks, nil
}
