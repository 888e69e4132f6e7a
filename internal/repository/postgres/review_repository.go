package postgres

import (
	"context"
	"fmt"

	"myLaptopHub/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		DB: db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) FindAll(ctx context.Context) ([]domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var reviews []domain.Review
	if err := r.DB.WithContext(ctx).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}

	return reviews, nil
}

func (r *ReviewRepository) FindByLaptop(ctx context.Context, laptopID uint64) ([]domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var reviews []domain.Review
	err := r.DB.WithContext(ctx).
		Where("laptop_id = ?", laptopID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}

	return reviews, nil
}

// Exists reports whether the same responder already submitted the same
// review text. Import runs rely on this for idempotency.
func (r *ReviewRepository) Exists(ctx context.Context, responderName, review string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("context error: %w", err)
	}

	var count int64
	err := r.DB.WithContext(ctx).Model(&domain.Review{}).
		Where("responder_name = ? AND review = ?", responderName, review).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}

	return count > 0, nil
}

// RatingSummaries aggregates the average rating and review count per
// laptop in one query.
func (r *ReviewRepository) RatingSummaries(ctx context.Context) (map[uint64]domain.RatingSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.RatingSummary
	err := r.DB.WithContext(ctx).Model(&domain.Review{}).
		Select("laptop_id, AVG(rating) AS avg_rating, COUNT(*) AS review_count").
		Group("laptop_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	summaries := make(map[uint64]domain.RatingSummary, len(rows))
	for _, row := range rows {
		summaries[row.LaptopID] = row
	}

	return summaries, nil
}
