package domain

import (
	"time"
)

// CREATE TABLE public.reviews (
//     id             BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     laptop_id      BIGINT REFERENCES laptops(id),
//     responder_name TEXT,
//     rating         INT,
//     review         TEXT,
//     created_at     TIMESTAMPTZ DEFAULT NOW()
// );

type Review struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	LaptopID      uint64    `gorm:"column:laptop_id"`
	ResponderName string    `gorm:"column:responder_name;type:text"`
	Rating        int       `gorm:"column:rating"`
	Review        string    `gorm:"column:review;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (Review) TableName() string {
	return "reviews"
}

// RatingSummary is the aggregated rating for one laptop.
type RatingSummary struct {
	LaptopID    uint64
	AvgRating   float64
	ReviewCount int
}
