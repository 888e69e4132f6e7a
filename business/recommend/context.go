package recommend

import (
	"regexp"
	"strconv"
	"strings"
)

// Category is the usage profile detected from a query.
type Category int

const (
	CategoryNone Category = iota
	CategoryStudent
	CategoryEditing
	CategoryGaming
	CategoryOffice
)

func (c Category) String() string {
	switch c {
	case CategoryStudent:
		return "student"
	case CategoryEditing:
		return "editing"
	case CategoryGaming:
		return "gaming"
	case CategoryOffice:
		return "office"
	default:
		return "none"
	}
}

var (
	studentRe = regexp.MustCompile(`sekolah|pelajar|belajar|pendidikan`)
	editingRe = regexp.MustCompile(`editing|video|desain grafis|adobe`)
	gamingRe  = regexp.MustCompile(`gaming|game|rtx|gtx`)
	officeRe  = regexp.MustCompile(`kantor|office|pekerjaan|bisnis`)

	hwGPURe    = regexp.MustCompile(`(rtx|gtx)\s*(\d{3,4})?`)
	hwVendorRe = regexp.MustCompile(`intel|core\s*i[3579]|amd|ryzen`)
	hwRAMRe    = regexp.MustCompile(`(\d+)\s*gb\s*ram`)
)

// HardwareConstraints are explicit hardware mentions in the query.
// They score as strong soft constraints and filter as hard ones.
type HardwareConstraints struct {
	GPUFamily string // "rtx" or "gtx"
	GPUModel  string // "3060", empty when only the family is named
	CPUVendor string // "intel" or "amd"
	RAMSize   int    // gigabytes, 0 when absent
}

func (h HardwareConstraints) Any() bool {
	return h.GPUFamily != "" || h.CPUVendor != "" || h.RAMSize > 0
}

// QueryContext carries the detected category, per-aspect term weights,
// and explicit hardware constraints used by the lexical scorer.
type QueryContext struct {
	Category Category
	Weights  map[string]float64
	Hardware HardwareConstraints
}

// Weight returns the multiplier for a term, defaulting to 1.
func (qc QueryContext) Weight(term string) float64 {
	if w, ok := qc.Weights[term]; ok {
		return w
	}
	return 1
}

// DetectQueryContext classifies the query into a usage category and
// boosts the hardware aspects that matter for it. The first matching
// category wins.
func DetectQueryContext(query string) QueryContext {
	weights := map[string]float64{
		"cpu":     1,
		"gpu":     1,
		"ram":     1,
		"storage": 1,
		"price":   1,
		"cooling": 1,
		"display": 1,
	}

	query = strings.ToLower(query)
	category := CategoryNone

	switch {
	case studentRe.MatchString(query):
		category = CategoryStudent
		weights["price"] = 4
		weights["cpu"] = 2
		weights["battery"] = 3
	case editingRe.MatchString(query):
		category = CategoryEditing
		weights["cpu"] = 4
		weights["gpu"] = 3
		weights["ram"] = 3
		weights["storage"] = 2
		weights["display"] = 2
	case gamingRe.MatchString(query):
		category = CategoryGaming
		weights["gpu"] = 5
		weights["cooling"] = 3
		weights["cpu"] = 3
		weights["refresh"] = 2
	case officeRe.MatchString(query):
		category = CategoryOffice
		weights["cpu"] = 2
		weights["ram"] = 2
		weights["price"] = 4
		weights["gpu"] = -2
	}

	return QueryContext{Category: category, Weights: weights, Hardware: detectHardware(query)}
}

// detectHardware pulls explicit hardware mentions out of a lowercased
// query. RAM only counts when followed by "ram", so storage sizes like
// "512gb ssd" never turn into a memory constraint.
func detectHardware(query string) HardwareConstraints {
	var hw HardwareConstraints

	if m := hwGPURe.FindStringSubmatch(query); m != nil {
		hw.GPUFamily = m[1]
		hw.GPUModel = m[2]
	}

	if m := hwVendorRe.FindString(query); m != "" {
		if strings.Contains(m, "amd") || strings.Contains(m, "ryzen") {
			hw.CPUVendor = "amd"
		} else {
			hw.CPUVendor = "intel"
		}
	}

	if m := hwRAMRe.FindStringSubmatch(query); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			hw.RAMSize = n
		}
	}

	return hw
}
