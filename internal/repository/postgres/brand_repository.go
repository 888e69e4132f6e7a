package postgres

import (
	"context"
	"fmt"

	"myLaptopHub/domain"

	"gorm.io/gorm"
)

type BrandRepository struct {
	DB *gorm.DB
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{
		DB: db,
	}
}

// FindOrCreate resolves a brand by name, inserting it on first sight.
func (r *BrandRepository) FindOrCreate(ctx context.Context, name string) (domain.Brand, error) {
	if err := ctx.Err(); err != nil {
		return domain.Brand{}, fmt.Errorf("context error: %w", err)
	}

	var brand domain.Brand
	err := r.DB.WithContext(ctx).
		Where(domain.Brand{Name: name}).
		FirstOrCreate(&brand).Error
	if err != nil {
		return domain.Brand{}, fmt.Errorf("failed to find or create brand: %w", err)
	}

	return brand, nil
}

func (r *BrandRepository) FindAll(ctx context.Context) ([]domain.Brand, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var brands []domain.Brand
	if err := r.DB.WithContext(ctx).Order("name").Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to find brands: %w", err)
	}

	return brands, nil
}
