package domain

import (
	"time"
)

// CREATE TABLE public.user_clicks (
//     user_id     BIGINT REFERENCES users(id),
//     brand_id    BIGINT REFERENCES brands(id),
//     click_count INT DEFAULT 0,
//     updated_at  TIMESTAMPTZ DEFAULT NOW(),
//     PRIMARY KEY (user_id, brand_id)
// );

type UserClick struct {
	UserID     uint64    `gorm:"column:user_id;primaryKey"`
	BrandID    uint64    `gorm:"column:brand_id;primaryKey"`
	ClickCount int       `gorm:"column:click_count;default:0"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (UserClick) TableName() string {
	return "user_clicks"
}
