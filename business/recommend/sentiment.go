package recommend

import (
	"regexp"
	"strings"

	"myLaptopHub/domain"
)

// Review text only feeds the lexical index when it clearly endorses a
// use case. A review saying "tidak cocok untuk gaming" would otherwise
// rank the laptop FOR gaming.

var negativeIndicators = []string{
	"hanya bisa untuk",
	"kurang cocok untuk",
	"tidak cocok untuk",
	"tidak kuat untuk",
	"tidak bagus untuk",
	"kurang bagus buat",
	"tidak direkomendasikan untuk",
	"lemot saat",
	"kurang nyaman untuk",
	"kurang optimal buat",
	"tidak support",
	"sering lag",
	"cepat panas saat",
	"frame drop saat",
}

var positiveIndicators = []string{
	"cocok untuk",
	"bagus untuk",
	"sangat baik untuk",
	"lancar digunakan untuk",
	"mendukung untuk",
	"powerful untuk",
	"ideal untuk",
	"terbaik untuk",
	"mantap buat",
	"oke buat",
	"recommended buat",
	"responsif saat",
	"mulus saat digunakan",
}

func isNegativeSentence(text string) bool {
	for _, phrase := range negativeIndicators {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

func isPositiveSentence(text string) bool {
	for _, phrase := range positiveIndicators {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

var (
	gamingPraiseRe  = regexp.MustCompile(`gaming|game`)
	editingPraiseRe = regexp.MustCompile(`editing|render|video|desain`)
)

// usableReview reports whether a review should contribute terms.
// Negative phrasing wins over positive when both appear, and praise
// the hardware cannot back up is dropped: "bagus untuk editing" on an
// entry-level machine would otherwise poison the index.
func usableReview(text string, l domain.Laptop) bool {
	text = strings.ToLower(text)
	if isNegativeSentence(text) {
		return false
	}
	if !isPositiveSentence(text) {
		return false
	}
	if gamingPraiseRe.MatchString(text) && !isDedicatedGPU(l.GPU) {
		return false
	}
	if editingPraiseRe.MatchString(text) && (!isHighEndCPU(l.CPU) || extractRAM(l.RAM, 0) < 16) {
		return false
	}
	return true
}
