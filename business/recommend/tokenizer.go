package recommend

import (
	"fmt"
	"regexp"
	"strings"
)

var stopWords = map[string]struct{}{
	"untuk":  {},
	"ke":     {},
	"dari":   {},
	"yang":   {},
	"dan":    {},
	"atau":   {},
	"adalah": {},
	"ini":    {},
	"itu":    {},
}

// applied after stemming, so keys are root forms
var synonymMapping = map[string]string{
	// sekolah
	"sekolah":    "entrylevel",
	"pelajar":    "entrylevel",
	"pendidikan": "basic",

	// editing
	"editing": "highperformance",
	"desain":  "creative",
	"video":   "render",

	// teknis
	"processor": "cpu",
	"cpu":       "processor",
	"graphics":  "gpu",
	"gpu":       "graphics",
	"ssd":       "storage",
	"hdd":       "storage",
	"memory":    "ram",
	"ram":       "memory",

	// fitur umum
	"nyaman": "ergonomis ringan",
	"panas":  "overheating temperatur tinggi",
	"awet":   "tahan lama durability",
	"lemot":  "lambat performa rendah",
}

var (
	separatorReplacer = strings.NewReplacer("-", " ", "_", " ", "/", " ")
	nonAlnumRe        = regexp.MustCompile(`[^a-z0-9\s]`)

	ramTermRe   = regexp.MustCompile(`(\d+)\s?gb`)
	intelCPURe  = regexp.MustCompile(`(?:intel|core)\s*i([3579])`)
	ryzenCPURe  = regexp.MustCompile(`ryzen\s*([3579])`)
	rtxModelRe  = regexp.MustCompile(`rtx\s*(\d{3,4})`)
)

// Tokenizer turns free text into weighted search terms.
type Tokenizer struct {
	stemmer Stemmer
}

func NewTokenizer(stemmer Stemmer) *Tokenizer {
	return &Tokenizer{stemmer: stemmer}
}

// Tokenize lowercases, strips punctuation, drops stop words, stems, and
// maps domain synonyms. Synthetic terms (ram_16gb, cpu_intel_i7,
// cpu_amd_r5, gpu_rtx_3060) are derived from the raw text so hardware
// mentions survive stemming. The weight repeats the terms, which is how
// spec fields outweigh review text in the TF counts.
func (t *Tokenizer) Tokenize(text string, weight int) []string {
	normalized := strings.ToLower(text)
	normalized = separatorReplacer.Replace(normalized)
	normalized = nonAlnumRe.ReplaceAllString(normalized, "")

	var terms []string
	for _, word := range strings.Fields(normalized) {
		if _, skip := stopWords[word]; skip {
			continue
		}

		stemmed := t.stemmer.Stem(word)
		if mapped, ok := synonymMapping[stemmed]; ok {
			terms = append(terms, strings.Fields(mapped)...)
			continue
		}
		terms = append(terms, stemmed)
	}

	terms = append(terms, syntheticTerms(normalized)...)

	if weight <= 1 {
		return terms
	}
	weighted := make([]string, 0, len(terms)*weight)
	for range weight {
		weighted = append(weighted, terms...)
	}
	return weighted
}

func syntheticTerms(text string) []string {
	var terms []string
	for _, m := range ramTermRe.FindAllStringSubmatch(text, -1) {
		terms = append(terms, fmt.Sprintf("ram_%sgb", m[1]))
	}
	for _, m := range intelCPURe.FindAllStringSubmatch(text, -1) {
		terms = append(terms, fmt.Sprintf("cpu_intel_i%s", m[1]))
	}
	for _, m := range ryzenCPURe.FindAllStringSubmatch(text, -1) {
		terms = append(terms, fmt.Sprintf("cpu_amd_r%s", m[1]))
	}
	for _, m := range rtxModelRe.FindAllStringSubmatch(text, -1) {
		terms = append(terms, fmt.Sprintf("gpu_rtx_%s", m[1]))
	}
	return terms
}
