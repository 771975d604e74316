package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	classifier "github.com/samuel/go-naivebayes"
)

func TestRecorder(t *testing.T) {
	req := require.New(t)
	r := NewRecorder()

	r.OutOfVocabulary(3)
	r.OutOfVocabulary(2)
	r.Classified(classifier.Positive)
	r.Classified(classifier.Negative)
	r.Classified(classifier.Positive)
	r.Evaluated(&classifier.ErrorReport{TestSize: 10, Errors: 2, ErrorRate: 0.2})

	req.Equal(5.0, testutil.ToFloat64(r.oovTokens))
	req.Equal(2.0, testutil.ToFloat64(r.classifications.WithLabelValues("positive")))
	req.Equal(1.0, testutil.ToFloat64(r.classifications.WithLabelValues("negative")))
	req.Equal(1.0, testutil.ToFloat64(r.evaluations))
	req.Equal(0.2, testutil.ToFloat64(r.errorRate))
	req.Equal(2.0, testutil.ToFloat64(r.misclassified))
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.OutOfVocabulary(4)

	path := filepath.Join(t.TempDir(), "nbayes.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), "nbayes_oov_tokens_total 4"), string(data))
}
