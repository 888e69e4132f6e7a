package postgres

import (
	"context"
	"errors"
	"fmt"

	"myLaptopHub/domain"

	"gorm.io/gorm"
)

type LaptopRepository struct {
	DB *gorm.DB
}

func NewLaptopRepository(db *gorm.DB) *LaptopRepository {
	return &LaptopRepository{
		DB: db,
	}
}

func (r *LaptopRepository) Create(ctx context.Context, laptop *domain.Laptop) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(laptop).Error; err != nil {
		return fmt.Errorf("failed to create laptop: %w", err)
	}

	return nil
}

func (r *LaptopRepository) FindByID(ctx context.Context, id uint64) (domain.Laptop, error) {
	if err := ctx.Err(); err != nil {
		return domain.Laptop{}, fmt.Errorf("context error: %w", err)
	}

	var laptop domain.Laptop

	err := r.DB.WithContext(ctx).Preload("Brand").First(&laptop, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Laptop{}, errors.New("laptop not found")
		}
		return domain.Laptop{}, fmt.Errorf("failed to find laptop: %w", err)
	}

	return laptop, nil
}

func (r *LaptopRepository) FindAll(ctx context.Context) ([]domain.Laptop, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var laptops []domain.Laptop
	err := r.DB.WithContext(ctx).Preload("Brand").Find(&laptops).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find laptops: %w", err)
	}

	return laptops, nil
}

func (r *LaptopRepository) FindByIDs(ctx context.Context, ids []uint64) ([]domain.Laptop, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(ids) == 0 {
		return nil, nil
	}

	var laptops []domain.Laptop
	err := r.DB.WithContext(ctx).Preload("Brand").Where("id IN ?", ids).Find(&laptops).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find laptops by ids: %w", err)
	}

	return laptops, nil
}

func (r *LaptopRepository) FindByBrandSeriesModel(ctx context.Context, brandID uint64, series, model string) (domain.Laptop, error) {
	if err := ctx.Err(); err != nil {
		return domain.Laptop{}, fmt.Errorf("context error: %w", err)
	}

	var laptop domain.Laptop

	err := r.DB.WithContext(ctx).Preload("Brand").
		Where("brand_id = ? AND series = ? AND model = ?", brandID, series, model).
		First(&laptop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Laptop{}, errors.New("laptop not found")
		}
		return domain.Laptop{}, fmt.Errorf("failed to find laptop: %w", err)
	}

	return laptop, nil
}

func (r *LaptopRepository) Update(ctx context.Context, laptop *domain.Laptop) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	var existing domain.Laptop
	if err := r.DB.WithContext(ctx).First(&existing, laptop.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("laptop not found")
		}
		return fmt.Errorf("failed to find laptop: %w", err)
	}

	updateData := map[string]interface{}{
		"brand_id":    laptop.BrandID,
		"series":      laptop.Series,
		"model":       laptop.Model,
		"cpu":         laptop.CPU,
		"gpu":         laptop.GPU,
		"ram":         laptop.RAM,
		"storage":     laptop.Storage,
		"display":     laptop.Display,
		"description": laptop.Description,
		"price":       laptop.Price,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Laptop{}).Where("id = ?", laptop.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update laptop: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("laptop not found or already deleted")
	}

	return nil
}

func (r *LaptopRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Laptop{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete laptop: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("laptop not found or already deleted")
	}

	return nil
}
