package recommend

import (
	"math"
	"sort"
	"strings"

	"myLaptopHub/domain"
)

// TFIDFScorer ranks laptops against a free-text query. Spec fields and
// endorsing review sentences form the document corpus, so a laptop
// reviewers praise for a use case ranks higher for queries about it.
type TFIDFScorer struct {
	tok *Tokenizer
	cfg Config
}

func NewTFIDFScorer(tok *Tokenizer, cfg Config) *TFIDFScorer {
	return &TFIDFScorer{tok: tok, cfg: cfg}
}

// Score returns raw relevance per laptop. Laptops outside the price
// range never enter the corpus. Explicit hardware mentions filter
// hard; office queries apply their own hard filter (no gaming chassis,
// integrated GPU only); every other query keeps positive scores only.
func (s *TFIDFScorer) Score(query string, laptops []domain.Laptop, reviews map[uint64][]domain.Review, price *domain.PriceRange) map[uint64]float64 {
	qc := DetectQueryContext(query)

	candidates := make([]domain.Laptop, 0, len(laptops))
	laptopDocs := make(map[uint64][]string, len(laptops))
	var allDocs [][]string

	for _, l := range laptops {
		if !price.Contains(l.Price) {
			continue
		}
		candidates = append(candidates, l)

		specTerms := s.tok.Tokenize(combineSpecs(l), s.cfg.SpecTermWeight)
		allDocs = append(allDocs, specTerms)

		doc := append([]string(nil), specTerms...)
		for _, r := range reviews[l.ID] {
			if !usableReview(r.Review, l) {
				continue
			}
			revTerms := s.tok.Tokenize(r.Review, 1)
			allDocs = append(allDocs, revTerms)
			doc = append(doc, revTerms...)
		}
		laptopDocs[l.ID] = doc
	}

	idf := calculateIDF(allDocs)
	queryTerms := s.tok.Tokenize(query, 1)

	scores := make(map[uint64]float64, len(candidates))
	for _, l := range candidates {
		tf := calculateTF(laptopDocs[l.ID])

		score := 0.0
		for _, term := range queryTerms {
			tfv, tfOK := tf[term]
			idfv, idfOK := idf[term]
			if tfOK && idfOK {
				score += tfv * idfv * qc.Weight(term)
			}
		}
		score += specScore(l, qc, s.cfg)
		score += strictHardwareScore(l, qc.Hardware)
		scores[l.ID] = score
	}

	return topKScores(s.filterByContext(scores, candidates, qc), s.cfg.LexicalTopK)
}

// topKScores keeps the K best survivors. Weaker strategies downstream
// cannot resurrect a laptop the lexical stage already ranked out.
func topKScores(scores map[uint64]float64, k int) map[uint64]float64 {
	if k <= 0 || len(scores) <= k {
		return scores
	}

	type ranked struct {
		id    uint64
		score float64
	}
	all := make([]ranked, 0, len(scores))
	for id, score := range scores {
		all = append(all, ranked{id: id, score: score})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score > all[j].score
		}
		return all[i].id < all[j].id
	})

	top := make(map[uint64]float64, k)
	for _, r := range all[:k] {
		top[r.id] = r.score
	}
	return top
}

func (s *TFIDFScorer) filterByContext(scores map[uint64]float64, laptops []domain.Laptop, qc QueryContext) map[uint64]float64 {
	filtered := make(map[uint64]float64, len(scores))
	for _, l := range laptops {
		if qc.Hardware.Any() && !meetsHardware(l, qc.Hardware) {
			continue
		}
		score := scores[l.ID]
		if qc.Category == CategoryOffice {
			if !isGamingLaptop(l) && classifyGPU(l.GPU) == GPUIntegrated {
				filtered[l.ID] = score
			}
			continue
		}
		if score > 0 {
			filtered[l.ID] = score
		}
	}
	return filtered
}

func combineSpecs(l domain.Laptop) string {
	return strings.Join([]string{
		l.Brand.Name,
		l.Series,
		l.Model,
		l.Description,
		l.CPU,
		l.GPU,
		l.RAM,
		l.Storage,
		l.Display,
	}, " ")
}

// tf = 1 + ln(count), sublinear so spam terms saturate
func calculateTF(terms []string) map[string]float64 {
	counts := make(map[string]int, len(terms))
	for _, t := range terms {
		counts[t]++
	}
	tf := make(map[string]float64, len(counts))
	for term, count := range counts {
		tf[term] = 1 + math.Log(float64(count))
	}
	return tf
}

// smoothed idf, never zero even for terms in every document
func calculateIDF(docs [][]string) map[string]float64 {
	docFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, term := range doc {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			docFreq[term]++
		}
	}

	totalDocs := float64(len(docs))
	idf := make(map[string]float64, len(docFreq))
	for term, df := range docFreq {
		idf[term] = math.Log((totalDocs+1)/(float64(df)+0.5)) + 1
	}
	return idf
}
