package classifier

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Mode selects how token occurrences are encoded in a FeatureVector.
type Mode int

const (
	// SetMode records presence (0 or 1) of each vocabulary token.
	SetMode Mode = iota
	// BagMode records the number of occurrences of each vocabulary token.
	BagMode
)

func (m Mode) String() string {
	switch m {
	case SetMode:
		return "set"
	case BagMode:
		return "bag"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses "set" or "bag".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "set":
		return SetMode, nil
	case "bag":
		return BagMode, nil
	}
	return 0, fmt.Errorf("classifier: unknown vectorization mode %q", s)
}

// FeatureVector is a document encoded over a vocabulary. Position i
// corresponds to Vocabulary.Token(i).
type FeatureVector []float64

// Sum returns the total of all entries.
func (fv FeatureVector) Sum() float64 {
	return lo.Sum([]float64(fv))
}

// Vectorize encodes doc over the vocabulary. Tokens not in the vocabulary
// leave the vector untouched and are returned as diagnostics.
func (v *Vocabulary) Vectorize(doc Document, mode Mode) (FeatureVector, []OutOfVocabulary) {
	vec := make(FeatureVector, len(v.tokens))
	var missing []OutOfVocabulary
	for _, token := range doc {
		i, ok := v.index[token]
		if !ok {
			missing = append(missing, OutOfVocabulary{Token: token})
			continue
		}
		if mode == BagMode {
			vec[i]++
		} else {
			vec[i] = 1
		}
	}
	return vec, missing
}

// VectorizeAll encodes every document and concatenates their diagnostics.
func (v *Vocabulary) VectorizeAll(docs []Document, mode Mode) ([]FeatureVector, []OutOfVocabulary) {
	vecs := make([]FeatureVector, len(docs))
	var missing []OutOfVocabulary
	for i, doc := range docs {
		var m []OutOfVocabulary
		vecs[i], m = v.Vectorize(doc, mode)
		missing = append(missing, m...)
	}
	return vecs, missing
}
