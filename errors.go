package classifier

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when vector, label or model lengths disagree.
	ErrShapeMismatch = errors.New("classifier: shape mismatch")
	// ErrDegenerateSplit is returned when a train/test split would leave
	// either partition empty.
	ErrDegenerateSplit = errors.New("classifier: degenerate split")
	// ErrInvalidLabel is returned for labels other than Negative and Positive.
	ErrInvalidLabel = errors.New("classifier: invalid label")
)

// ShapeMismatchError wraps ErrShapeMismatch with the offending lengths.
type ShapeMismatchError struct {
	What string
	Want int
	Got  int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: %s has length %d, want %d", ErrShapeMismatch.Error(), e.What, e.Got, e.Want)
}

func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }

func shapeMismatch(what string, want, got int) error {
	return &ShapeMismatchError{What: what, Want: want, Got: got}
}

// DegenerateSplitError wraps ErrDegenerateSplit with the requested sizes.
type DegenerateSplitError struct {
	Total    int
	TestSize int
}

func (e *DegenerateSplitError) Error() string {
	return fmt.Sprintf("%s: test size %d of %d documents", ErrDegenerateSplit.Error(), e.TestSize, e.Total)
}

func (e *DegenerateSplitError) Unwrap() error { return ErrDegenerateSplit }

// OutOfVocabulary records a token that was dropped during vectorization
// because the vocabulary does not contain it. It is a diagnostic, not a
// failure.
type OutOfVocabulary struct {
	Token string
}

func (e OutOfVocabulary) String() string {
	return "classifier: token " + e.Token + " is not in the vocabulary"
}
