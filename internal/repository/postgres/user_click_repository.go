package postgres

import (
	"context"
	"fmt"
	"time"

	"myLaptopHub/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserClickRepository struct {
	DB *gorm.DB
}

func NewUserClickRepository(db *gorm.DB) *UserClickRepository {
	return &UserClickRepository{
		DB: db,
	}
}

// Increment upserts the (user, brand) row, bumping click_count by one.
func (r *UserClickRepository) Increment(ctx context.Context, userID, brandID uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	click := domain.UserClick{
		UserID:     userID,
		BrandID:    brandID,
		ClickCount: 1,
		UpdatedAt:  time.Now(),
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "brand_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"click_count": gorm.Expr("user_clicks.click_count + 1"),
			"updated_at":  time.Now(),
		}),
	}).Create(&click).Error
	if err != nil {
		return fmt.Errorf("failed to record click: %w", err)
	}

	return nil
}

func (r *UserClickRepository) FindByUser(ctx context.Context, userID uint64) ([]domain.UserClick, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var clicks []domain.UserClick
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&clicks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find user clicks: %w", err)
	}

	return clicks, nil
}

func (r *UserClickRepository) FindAll(ctx context.Context) ([]domain.UserClick, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var clicks []domain.UserClick
	if err := r.DB.WithContext(ctx).Find(&clicks).Error; err != nil {
		return nil, fmt.Errorf("failed to find clicks: %w", err)
	}

	return clicks, nil
}
