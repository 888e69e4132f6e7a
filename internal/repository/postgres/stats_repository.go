package postgres

import (
	"context"
	"fmt"

	"myLaptopHub/domain"

	"gorm.io/gorm"
)

type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{
		DB: db,
	}
}

func (r *StatsRepository) CountLaptops(ctx context.Context) (int64, error) {
	return r.count(ctx, &domain.Laptop{})
}

func (r *StatsRepository) CountBrands(ctx context.Context) (int64, error) {
	return r.count(ctx, &domain.Brand{})
}

func (r *StatsRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, &domain.User{})
}

func (r *StatsRepository) CountReviews(ctx context.Context) (int64, error) {
	return r.count(ctx, &domain.Review{})
}

func (r *StatsRepository) AverageLaptopPrice(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var avg float64
	err := r.DB.WithContext(ctx).Model(&domain.Laptop{}).
		Select("COALESCE(AVG(price), 0)").
		Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute average price: %w", err)
	}

	return avg, nil
}

func (r *StatsRepository) count(ctx context.Context, model interface{}) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var count int64
	if err := r.DB.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}

	return count, nil
}
