//go:build !integration

package recommend

import (
	"reflect"
	"sort"
	"testing"
)

func TestTokenizeDropsStopWordsAndMapsSynonyms(t *testing.T) {
	tok := NewTokenizer(IdentityStemmer{})

	got := tok.Tokenize("laptop untuk editing dan desain", 1)
	want := []string{"laptop", "highperformance", "creative"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenizeNormalizesSeparatorsAndPunctuation(t *testing.T) {
	tok := NewTokenizer(IdentityStemmer{})

	got := tok.Tokenize("Laptop murah/ringan, anti-lemot!", 1)

	// lemot expands via the synonym table
	want := []string{"laptop", "murah", "ringan", "anti", "lambat", "performa", "rendah"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenizeMultiWordSynonymExpansions(t *testing.T) {
	tok := NewTokenizer(IdentityStemmer{})

	got := tok.Tokenize("panas awet", 1)
	want := []string{"overheating", "temperatur", "tinggi", "tahan", "lama", "durability"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenizeSyntheticHardwareTerms(t *testing.T) {
	tok := NewTokenizer(IdentityStemmer{})

	got := tok.Tokenize("Intel i7 16GB RTX 3060 Ryzen 5", 1)

	for _, want := range []string{"ram_16gb", "cpu_intel_i7", "cpu_amd_r5", "gpu_rtx_3060"} {
		if !containsTerm(got, want) {
			t.Errorf("Tokenize() missing synthetic term %q, got %v", want, got)
		}
	}
}

func TestTokenizeWeightRepeatsTerms(t *testing.T) {
	tok := NewTokenizer(IdentityStemmer{})

	got := tok.Tokenize("gaming murah", 3)
	if len(got) != 6 {
		t.Fatalf("Tokenize() with weight 3 returned %d terms, want 6", len(got))
	}

	counts := map[string]int{}
	for _, term := range got {
		counts[term]++
	}
	if counts["gaming"] != 3 || counts["murah"] != 3 {
		t.Fatalf("term counts = %v, want 3 each", counts)
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	tok := NewTokenizer(IdentityStemmer{})

	if got := tok.Tokenize("", 1); len(got) != 0 {
		t.Fatalf("Tokenize(empty) = %v, want no terms", got)
	}
	if got := tok.Tokenize("untuk yang dan", 1); len(got) != 0 {
		t.Fatalf("Tokenize(stop words only) = %v, want no terms", got)
	}
}

func TestTokenizeBidirectionalTechnicalSynonyms(t *testing.T) {
	tok := NewTokenizer(IdentityStemmer{})

	got := tok.Tokenize("ram ssd memory", 1)
	sort.Strings(got)
	want := []string{"memory", "ram", "storage"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokenize() = %v, want %v", got, want)
	}
}

func containsTerm(terms []string, want string) bool {
	for _, term := range terms {
		if term == want {
			return true
		}
	}
	return false
}
