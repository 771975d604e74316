package classifier

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimpleTokenizer(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "punctuation and case",
			text: "Hi Peter, With Jose out of town, do you want to meet once in a while?",
			want: []string{"peter", "with", "jose", "out", "town", "you", "want", "meet", "once", "while"},
		},
		{
			name: "repeats are kept",
			text: "spam spam SPAM eggs",
			want: []string{"spam", "spam", "spam", "eggs"},
		},
		{
			name: "urls split on non-word runs",
			text: "http://www.example.com/go?x=12345",
			want: []string{"http", "www", "example", "com", "12345"},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SimpleTokenizer.Tokenize(tt.text)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
