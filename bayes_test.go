package classifier

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func postings() ([]Document, []Label) {
	docs := []Document{
		{"my", "dog", "has", "flea", "problems", "help", "please"},
		{"maybe", "not", "take", "him", "to", "dog", "park", "stupid"},
		{"my", "dalmation", "is", "so", "cute", "I", "love", "him"},
		{"stop", "posting", "stupid", "worthless", "garbage"},
		{"mr", "licks", "ate", "my", "steak", "how", "to", "stop", "him"},
		{"quit", "buying", "worthless", "dog", "food", "stupid"},
	}
	return docs, []Label{0, 1, 0, 1, 0, 1}
}

func trainOn(t *testing.T, docs []Document, labels []Label, mode Mode) (*Vocabulary, *Model) {
	t.Helper()
	vocab := BuildVocabulary(docs)
	vecs, _ := vocab.VectorizeAll(docs, mode)
	model, err := Train(vecs, labels)
	require.NoError(t, err)
	return vocab, model
}

func TestTrain_TwoDocuments(t *testing.T) {
	req := require.New(t)
	docs := []Document{{"my", "dog", "has", "flea"}, {"stupid", "garbage"}}
	vocab, model := trainOn(t, docs, []Label{0, 1}, SetMode)
	req.Equal(6, vocab.Len())
	req.Equal(6, model.Len())
	req.Equal(0.5, model.PriorPositive())

	// stupid: (1+1)/(2+2) for Positive, 1/(2+4) for Negative.
	i, _ := vocab.Index("stupid")
	req.InDelta(math.Log(0.5), model.LogProbs(Positive)[i], 1e-12)
	req.InDelta(math.Log(1.0/6), model.LogProbs(Negative)[i], 1e-12)

	vec, _ := vocab.Vectorize(docs[1], SetMode)
	label, err := model.Classify(vec)
	req.NoError(err)
	req.Equal(Positive, label)
}

func TestTrain_Postings(t *testing.T) {
	req := require.New(t)
	docs, labels := postings()
	vocab, model := trainOn(t, docs, labels, SetMode)
	req.Equal(0.5, model.PriorPositive())

	vec, missing := vocab.Vectorize(Document{"love", "my", "dalmation"}, SetMode)
	req.Empty(missing)
	label, err := model.Classify(vec)
	req.NoError(err)
	req.Equal(Negative, label)

	vec, _ = vocab.Vectorize(Document{"stupid", "garbage"}, SetMode)
	label, err = model.Classify(vec)
	req.NoError(err)
	req.Equal(Positive, label)
}

func TestTrain_SmoothedLogProbsAreFiniteAndNegative(t *testing.T) {
	docs, labels := postings()
	for _, mode := range []Mode{SetMode, BagMode} {
		_, model := trainOn(t, docs, labels, mode)
		for _, l := range []Label{Negative, Positive} {
			for i, p := range model.LogProbs(l) {
				require.False(t, math.IsInf(p, 0) || math.IsNaN(p), "%s %s[%d] = %v", mode, l, i, p)
				require.Less(t, p, 0.0, "%s %s[%d]", mode, l, i)
			}
		}
	}
}

func TestTrain_BagModeCountsRepeats(t *testing.T) {
	docs := []Document{{"spam", "spam", "spam", "eggs"}, {"ham"}}
	vocab, model := trainOn(t, docs, []Label{1, 0}, BagMode)
	i, _ := vocab.Index("spam")
	// (1+3)/(2+4)
	require.InDelta(t, math.Log(4.0/6), model.LogProbs(Positive)[i], 1e-12)
}

func TestTrain_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name    string
		vectors []FeatureVector
		labels  []Label
	}{
		{"empty", nil, nil},
		{"label count", []FeatureVector{{1, 0}, {0, 1}}, []Label{0}},
		{"ragged vectors", []FeatureVector{{1, 0}, {0, 1, 1}}, []Label{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Train(tt.vectors, tt.labels)
			require.ErrorIs(t, err, ErrShapeMismatch)
			var sm *ShapeMismatchError
			require.True(t, errors.As(err, &sm))
		})
	}
}

func TestTrain_InvalidLabel(t *testing.T) {
	_, err := Train([]FeatureVector{{1}}, []Label{2})
	require.ErrorIs(t, err, ErrInvalidLabel)
}

func TestClassify_ShapeMismatch(t *testing.T) {
	_, model := trainOn(t, []Document{{"a", "b"}, {"c"}}, []Label{0, 1}, SetMode)
	_, err := model.Classify(FeatureVector{1, 0})
	require.ErrorIs(t, err, ErrShapeMismatch)

	var sm *ShapeMismatchError
	require.True(t, errors.As(err, &sm))
	require.Equal(t, 3, sm.Want)
	require.Equal(t, 2, sm.Got)
}

func TestClassify_TieGoesToNegative(t *testing.T) {
	_, model := trainOn(t, []Document{{"a"}, {"b"}}, []Label{0, 1}, SetMode)
	neg, pos, err := model.Scores(FeatureVector{0, 0})
	require.NoError(t, err)
	require.Equal(t, neg, pos)

	label, err := model.Classify(FeatureVector{0, 0})
	require.NoError(t, err)
	require.Equal(t, Negative, label)
}

func TestClassify_SingleClassTraining(t *testing.T) {
	req := require.New(t)
	_, model := trainOn(t, []Document{{"a"}, {"b"}}, []Label{1, 1}, SetMode)
	req.Equal(1.0, model.PriorPositive())

	neg, pos, err := model.Scores(FeatureVector{1, 1})
	req.NoError(err)
	req.True(math.IsInf(neg, -1))
	req.False(math.IsNaN(pos))

	label, err := model.Classify(FeatureVector{1, 0})
	req.NoError(err)
	req.Equal(Positive, label)
}

func TestClassify_Deterministic(t *testing.T) {
	docs, labels := postings()
	vocab, model := trainOn(t, docs, labels, SetMode)
	vec, _ := vocab.Vectorize(Document{"dog", "stupid", "park"}, SetMode)
	first, err := model.Classify(vec)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		got, err := model.Classify(vec)
		require.NoError(t, err)
		require.Equal(t, first, got)
	}
}

func TestModel_LogProbsIsACopy(t *testing.T) {
	_, model := trainOn(t, []Document{{"a"}, {"b"}}, []Label{0, 1}, SetMode)
	p := model.LogProbs(Positive)
	p[0] = 0
	require.NotEqual(t, 0.0, model.LogProbs(Positive)[0])
}
