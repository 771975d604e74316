package classifier

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// Label is a binary class. What Positive means (abusive, spam) is up to
// the caller.
type Label int

const (
	Negative Label = 0
	Positive Label = 1
)

func (l Label) String() string {
	switch l {
	case Negative:
		return "negative"
	case Positive:
		return "positive"
	}
	return fmt.Sprintf("Label(%d)", int(l))
}

// Valid reports whether l is Negative or Positive.
func (l Label) Valid() bool {
	return l == Negative || l == Positive
}

// Model holds the parameters of a trained classifier. It is never mutated
// after Train returns.
type Model struct {
	priorPositive float64
	logProb       [2][]float64 // indexed by Label
}

// Train estimates a Model from vectorized documents and their labels.
//
// Every per-token count starts at 1 and every class denominator at 2 so no
// conditional probability is ever zero, and the probabilities are stored as
// logs so scoring is a sum instead of a product of small numbers.
func Train(vectors []FeatureVector, labels []Label) (*Model, error) {
	if len(vectors) == 0 {
		return nil, shapeMismatch("training set", 1, 0)
	}
	if len(labels) != len(vectors) {
		return nil, shapeMismatch("labels", len(vectors), len(labels))
	}
	n := len(vectors[0])
	for _, vec := range vectors[1:] {
		if len(vec) != n {
			return nil, shapeMismatch("training vector", n, len(vec))
		}
	}
	for _, l := range labels {
		if !l.Valid() {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLabel, l)
		}
	}

	positives := lo.Count(labels, Positive)

	var num [2][]float64
	denom := [2]float64{2, 2}
	for c := range num {
		num[c] = make([]float64, n)
		for i := range num[c] {
			num[c][i] = 1
		}
	}
	for d, vec := range vectors {
		c := labels[d]
		for i, x := range vec {
			num[c][i] += x
		}
		denom[c] += vec.Sum()
	}

	m := &Model{priorPositive: float64(positives) / float64(len(vectors))}
	for c := range num {
		m.logProb[c] = make([]float64, n)
		for i, x := range num[c] {
			m.logProb[c][i] = math.Log(x / denom[c])
		}
	}
	return m, nil
}

// Len returns the vector length the model was trained on.
func (m *Model) Len() int {
	return len(m.logProb[Negative])
}

// PriorPositive returns the fraction of training documents labeled Positive.
func (m *Model) PriorPositive() float64 {
	return m.priorPositive
}

// LogProbs returns a copy of the smoothed log conditional probabilities
// for label.
func (m *Model) LogProbs(label Label) []float64 {
	out := make([]float64, len(m.logProb[label]))
	copy(out, m.logProb[label])
	return out
}

// logPrior returns log P(label). A class that never occurred in training
// gets -Inf, which always loses to the class that did.
func (m *Model) logPrior(label Label) float64 {
	p := m.priorPositive
	if label == Negative {
		p = 1 - p
	}
	if p <= 0 {
		return math.Inf(-1)
	}
	return math.Log(p)
}

// Scores returns the unnormalized log posteriors of vec for each class.
func (m *Model) Scores(vec FeatureVector) (negative, positive float64, err error) {
	if len(vec) != m.Len() {
		return 0, 0, shapeMismatch("feature vector", m.Len(), len(vec))
	}
	negative = m.logPrior(Negative)
	positive = m.logPrior(Positive)
	for i, x := range vec {
		if x == 0 {
			continue
		}
		negative += x * m.logProb[Negative][i]
		positive += x * m.logProb[Positive][i]
	}
	return negative, positive, nil
}

// Classify returns the label with the higher log posterior. Ties go to
// Negative.
func (m *Model) Classify(vec FeatureVector) (Label, error) {
	negative, positive, err := m.Scores(vec)
	if err != nil {
		return Negative, err
	}
	if positive > negative {
		return Positive, nil
	}
	return Negative, nil
}
