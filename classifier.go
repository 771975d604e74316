package classifier

// BayesianClassifier ties a Model to the Vocabulary and Mode it was trained
// with, so callers classify documents instead of raw vectors and cannot
// pair a vector with the wrong vocabulary.
type BayesianClassifier struct {
	vocab    *Vocabulary
	mode     Mode
	model    *Model
	observer Observer
}

// Fit builds a vocabulary from docs, vectorizes them and trains a model.
func Fit(docs []Document, labels []Label, mode Mode) (*BayesianClassifier, error) {
	vocab := BuildVocabulary(docs)
	vecs, _ := vocab.VectorizeAll(docs, mode)
	model, err := Train(vecs, labels)
	if err != nil {
		return nil, err
	}
	return &BayesianClassifier{
		vocab:    vocab,
		mode:     mode,
		model:    model,
		observer: NopObserver{},
	}, nil
}

// WithObserver returns a copy of bc that reports to o.
func (bc *BayesianClassifier) WithObserver(o Observer) *BayesianClassifier {
	c := *bc
	if o == nil {
		o = NopObserver{}
	}
	c.observer = o
	return &c
}

// Vocabulary returns the vocabulary the classifier was fit on.
func (bc *BayesianClassifier) Vocabulary() *Vocabulary {
	return bc.vocab
}

// Model returns the trained parameters.
func (bc *BayesianClassifier) Model() *Model {
	return bc.model
}

// Mode returns the vectorization mode.
func (bc *BayesianClassifier) Mode() Mode {
	return bc.mode
}

// Classify labels doc. Tokens the classifier has never seen are ignored and
// returned as diagnostics.
func (bc *BayesianClassifier) Classify(doc Document) (Label, []OutOfVocabulary, error) {
	vec, missing := bc.vocab.Vectorize(doc, bc.mode)
	if len(missing) > 0 {
		bc.observer.OutOfVocabulary(len(missing))
	}
	label, err := bc.model.Classify(vec)
	if err != nil {
		return Negative, missing, err
	}
	bc.observer.Classified(label)
	return label, missing, nil
}
