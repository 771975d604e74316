package classifier

import (
	"sort"

	"github.com/samber/lo"
)

// Document is a tokenized text. Order does not matter to vectorization,
// only multiplicity in BagMode.
type Document []string

// Vocabulary is an immutable, deduplicated index of the distinct tokens of
// a corpus.
type Vocabulary struct {
	tokens []string
	index  map[string]int // token -> position in tokens
}

// BuildVocabulary returns the union of all tokens in docs. Tokens are
// sorted so that the same corpus always produces the same indexing.
func BuildVocabulary(docs []Document) *Vocabulary {
	all := make([]string, 0)
	for _, doc := range docs {
		all = append(all, doc...)
	}
	tokens := lo.Uniq(all)
	sort.Strings(tokens)

	index := make(map[string]int, len(tokens))
	for i, t := range tokens {
		index[t] = i
	}
	return &Vocabulary{tokens: tokens, index: index}
}

// Len returns the number of distinct tokens.
func (v *Vocabulary) Len() int {
	return len(v.tokens)
}

// Index returns the position of token, if present.
func (v *Vocabulary) Index(token string) (int, bool) {
	i, ok := v.index[token]
	return i, ok
}

// Contains reports whether token is in the vocabulary.
func (v *Vocabulary) Contains(token string) bool {
	_, ok := v.index[token]
	return ok
}

// Token returns the token at position i.
func (v *Vocabulary) Token(i int) string {
	return v.tokens[i]
}

// Tokens returns a copy of the vocabulary in index order.
func (v *Vocabulary) Tokens() []string {
	out := make([]string, len(v.tokens))
	copy(out, v.tokens)
	return out
}
