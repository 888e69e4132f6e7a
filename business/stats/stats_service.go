package stats

import (
	"context"
	"fmt"
	"math"

	"myLaptopHub/domain"
	"myLaptopHub/pkg/logger"
)

// StatsRepository contract interface
type StatsRepository interface {
	CountLaptops(ctx context.Context) (int64, error)
	CountBrands(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	CountReviews(ctx context.Context) (int64, error)
	AverageLaptopPrice(ctx context.Context) (float64, error)
}

type statsService struct {
	statsRepo StatsRepository
}

func NewStatsService(statsRepo StatsRepository) *statsService {
	return &statsService{
		statsRepo: statsRepo,
	}
}

func (s *statsService) GetAdminStats(ctx context.Context) (*domain.AdminStats, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when building admin stats")
		return nil, fmt.Errorf("context error: %w", err)
	}

	laptops, err := s.statsRepo.CountLaptops(ctx)
	if err != nil {
		logger.Error("failed to count laptops", err)
		return nil, err
	}

	brands, err := s.statsRepo.CountBrands(ctx)
	if err != nil {
		logger.Error("failed to count brands", err)
		return nil, err
	}

	users, err := s.statsRepo.CountUsers(ctx)
	if err != nil {
		logger.Error("failed to count users", err)
		return nil, err
	}

	reviews, err := s.statsRepo.CountReviews(ctx)
	if err != nil {
		logger.Error("failed to count reviews", err)
		return nil, err
	}

	avgPrice, err := s.statsRepo.AverageLaptopPrice(ctx)
	if err != nil {
		logger.Error("failed to compute average price", err)
		return nil, err
	}

	return &domain.AdminStats{
		TotalLaptops: laptops,
		TotalBrands:  brands,
		TotalUsers:   users,
		TotalReviews: reviews,
		AvgPrice:     math.Round(avgPrice*100) / 100,
	}, nil
}
