package domain

import (
	"time"
)

// CREATE TABLE public.brands (
//     id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name       TEXT NOT NULL UNIQUE,
//     created_at TIMESTAMPTZ DEFAULT NOW()
// );

type Brand struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;type:text;unique;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Brand) TableName() string {
	return "brands"
}

// CREATE TABLE public.laptops (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     brand_id    BIGINT REFERENCES brands(id),
//     series      TEXT,
//     model       TEXT,
//     cpu         TEXT,
//     gpu         TEXT,
//     ram         TEXT,
//     storage     TEXT,
//     display     TEXT,
//     description TEXT,
//     price       NUMERIC,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

type Laptop struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	BrandID     uint64    `gorm:"column:brand_id"`
	Brand       Brand     `gorm:"foreignKey:BrandID"`
	Series      string    `gorm:"column:series;type:text"`
	Model       string    `gorm:"column:model;type:text"`
	CPU         string    `gorm:"column:cpu;type:text"`
	GPU         string    `gorm:"column:gpu;type:text"`
	RAM         string    `gorm:"column:ram;type:text"`
	Storage     string    `gorm:"column:storage;type:text"`
	Display     string    `gorm:"column:display;type:text"`
	Description string    `gorm:"column:description;type:text"`
	Price       float64   `gorm:"column:price;type:numeric"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Laptop) TableName() string {
	return "laptops"
}

// FullName is the display name used in search results.
func (l Laptop) FullName() string {
	return l.Brand.Name + " " + l.Series + " " + l.Model
}

// LaptopDetail is the detail-page shape: the laptop with its reviews
// and aggregated rating.
type LaptopDetail struct {
	Laptop      Laptop   `json:"laptop"`
	AvgRating   float64  `json:"avg_rating"`
	ReviewCount int      `json:"review_count"`
	Reviews     []Review `json:"reviews"`
}
