package classifier

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Tokenizer is the interface for a text tokenizer
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

type simpleTokenizer struct{}

// SimpleTokenizer splits text on runs of non-word characters, lowercases
// the pieces and drops those of two characters or fewer. Repeated tokens
// are kept.
var SimpleTokenizer = simpleTokenizer{}

var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

func (t simpleTokenizer) Tokenize(text string) ([]string, error) {
	fields := nonWord.Split(text, -1)
	tokens := fields[:0]
	for _, s := range fields {
		if utf8.RuneCountInString(s) > 2 {
			tokens = append(tokens, strings.ToLower(s))
		}
	}
	return tokens, nil
}
