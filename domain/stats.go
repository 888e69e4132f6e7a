package domain

// AdminStats is the catalog overview shown on the admin dashboard.
type AdminStats struct {
	TotalLaptops int64   `json:"total_laptops"`
	TotalBrands  int64   `json:"total_brands"`
	TotalUsers   int64   `json:"total_users"`
	TotalReviews int64   `json:"total_reviews"`
	AvgPrice     float64 `json:"avg_price"`
}
