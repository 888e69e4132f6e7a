package domain

// PriceRange is an optional budget constraint parsed from the query text.
type PriceRange struct {
	Min float64
	Max float64
}

func (p *PriceRange) Contains(price float64) bool {
	if p == nil {
		return true
	}

	return price >= p.Min && price <= p.Max
}

// ComponentScore carries one scorer's normalized output for a laptop.
type ComponentScore struct {
	LaptopID uint64
	Score    float64
}

// LaptopScore is the blended relevance for one laptop, with the
// per-strategy components kept for the debug surface.
type LaptopScore struct {
	LaptopID uint64
	Score    float64
	TFIDF    float64
	CBF      float64
	CF       float64
}

// SearchResult is the API-facing shape of one ranked laptop.
type SearchResult struct {
	Laptop      Laptop  `json:"laptop"`
	Score       float64 `json:"score"`
	AvgRating   float64 `json:"avg_rating"`
	ReviewCount int     `json:"review_count"`
}

// SearchResponse wraps a ranking with the strategy that produced it.
type SearchResponse struct {
	Strategy string         `json:"strategy"`
	Results  []SearchResult `json:"results"`
}
