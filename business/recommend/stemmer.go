package recommend

import (
	sastrawi "github.com/RadhiFadlillah/go-sastrawi"
)

// Stemmer reduces an Indonesian word to its root form.
type Stemmer interface {
	Stem(word string) string
}

type sastrawiStemmer struct {
	stemmer sastrawi.Stemmer
}

// NewSastrawiStemmer builds the default Indonesian stemmer.
func NewSastrawiStemmer() Stemmer {
	return &sastrawiStemmer{
		stemmer: sastrawi.NewStemmer(sastrawi.DefaultDictionary()),
	}
}

func (s *sastrawiStemmer) Stem(word string) string {
	return s.stemmer.Stem(word)
}

// IdentityStemmer leaves words untouched. Used in tests so expected
// terms stay readable.
type IdentityStemmer struct{}

func (IdentityStemmer) Stem(word string) string { return word }
