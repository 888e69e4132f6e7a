package search

import (
	"regexp"
	"strconv"
	"strings"

	"myLaptopHub/domain"
)

// Brands the catalog carries. Queries mentioning one become a brand
// filter instead of a lexical term.
var knownBrands = []string{"asus", "acer", "lenovo", "hp", "msi"}

var (
	commaRunRe   = regexp.MustCompile(`,+`)
	whitespaceRe = regexp.MustCompile(`\s+`)

	// "harga:5000000-15000000" comes from the price filter widget
	priceFilterRe = regexp.MustCompile(`harga:(\d+)-(\d+)`)
	priceRangeRe  = regexp.MustCompile(`(?i)(\d+)\s*-\s*(\d+)\s*(juta|jt)`)
	priceSingleRe = regexp.MustCompile(`(?i)(\d+)\s*(jutaan|jtan|juta|jt)`)
	priceThouRe   = regexp.MustCompile(`(?i)\d+\s*(rb|ribu|rban|k)`)
	// "8 juta an" spelling leaves a stray "an" behind the price strip
	strayAnRe = regexp.MustCompile(`(?i)\s+an\s*`)

	specificQueryRe    = regexp.MustCompile(`(?i)(\d+gb\s+ram|rtx\s+\d+|ryzen\s+\d+|core\s+i\d+)`)
	specificHardwareRe = regexp.MustCompile(`(?i)(rtx\s*\d+|ryzen\s*\d+|core\s*i\d+|\d+gb\s*ram)`)
)

const juta = 1_000_000

// NormalizeQuery turns comma-separated filter input like "asus,kantor"
// into plain words.
func NormalizeQuery(query string) string {
	normalized := commaRunRe.ReplaceAllString(query, " ")
	normalized = whitespaceRe.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

// ExtractPriceRange reads a budget from the query. Supported forms:
// "harga:5000000-15000000" (exact), "4-6 juta" (exact), and
// "5 juta" / "5 jutaan" (value plus or minus one juta).
func ExtractPriceRange(query string) *domain.PriceRange {
	if m := priceFilterRe.FindStringSubmatch(query); m != nil {
		min, _ := strconv.ParseFloat(m[1], 64)
		max, _ := strconv.ParseFloat(m[2], 64)
		return &domain.PriceRange{Min: min, Max: max}
	}

	if m := priceRangeRe.FindStringSubmatch(query); m != nil {
		min, _ := strconv.ParseFloat(m[1], 64)
		max, _ := strconv.ParseFloat(m[2], 64)
		return &domain.PriceRange{Min: min * juta, Max: max * juta}
	}

	if m := priceSingleRe.FindStringSubmatch(query); m != nil {
		value, _ := strconv.ParseFloat(m[1], 64)
		value *= juta
		return &domain.PriceRange{Min: value - juta, Max: value + juta}
	}

	return nil
}

// RemovePriceTerms strips budget mentions so they do not pollute the
// lexical query.
func RemovePriceTerms(query string) string {
	clean := priceFilterRe.ReplaceAllString(query, "")
	clean = priceThouRe.ReplaceAllString(clean, "")
	clean = priceRangeRe.ReplaceAllString(clean, "")
	clean = priceSingleRe.ReplaceAllString(clean, "")
	clean = strayAnRe.ReplaceAllString(clean, "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(clean, " "))
}

// ExtractBrandFilter returns the first known brand mentioned, or "".
func ExtractBrandFilter(query string) string {
	lower := strings.ToLower(query)
	for _, brand := range knownBrands {
		if strings.Contains(lower, brand) {
			return brand
		}
	}
	return ""
}

var brandTermRe = regexp.MustCompile(`(?i)` + strings.Join(knownBrands, "|"))

// RemoveBrandTerms strips brand mentions from the query.
func RemoveBrandTerms(query string) string {
	query = brandTermRe.ReplaceAllString(query, "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(query, " "))
}

// IsSpecificQuery reports whether the raw query names concrete hardware.
func IsSpecificQuery(query string) bool {
	return specificQueryRe.MatchString(query)
}

// IsSpecificHardwareQuery is the looser check used after price and brand
// terms are removed.
func IsSpecificHardwareQuery(query string) bool {
	return specificHardwareRe.MatchString(query)
}
