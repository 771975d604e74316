package classifier

import (
	"fmt"

	"github.com/samber/lo"
)

// LabeledDocument is a stored corpus entry.
type LabeledDocument struct {
	Name   string
	Label  Label
	Tokens Document
}

// Store is the storage interface for a labeled corpus
type Store interface {
	AddDocument(label Label, name string, tokens []string) error
	Documents() ([]LabeledDocument, error) // in insertion order
	Counts() (map[Label]int64, error)      // label -> document count
}

// Corpus splits stored documents into the parallel slices Fit and
// Evaluator expect.
func Corpus(docs []LabeledDocument) ([]Document, []Label) {
	return lo.Map(docs, func(d LabeledDocument, _ int) Document { return d.Tokens }),
		lo.Map(docs, func(d LabeledDocument, _ int) Label { return d.Label })
}

type localStore struct {
	documents []LabeledDocument
	counts    map[Label]int64
}

// NewLocalStore returns a new in-memory store (for testing purposes mainly)
func NewLocalStore() Store {
	return &localStore{
		documents: make([]LabeledDocument, 0),
		counts:    make(map[Label]int64),
	}
}

func (ls *localStore) AddDocument(label Label, name string, tokens []string) error {
	if !label.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidLabel, label)
	}
	doc := make(Document, len(tokens))
	copy(doc, tokens)
	ls.documents = append(ls.documents, LabeledDocument{Name: name, Label: label, Tokens: doc})
	ls.counts[label]++
	return nil
}

func (ls *localStore) Documents() ([]LabeledDocument, error) {
	out := make([]LabeledDocument, len(ls.documents))
	copy(out, ls.documents)
	return out, nil
}

func (ls *localStore) Counts() (map[Label]int64, error) {
	out := make(map[Label]int64, len(ls.counts))
	for l, n := range ls.counts {
		out[l] = n
	}
	return out, nil
}
