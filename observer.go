package classifier

// Observer receives diagnostic events from BayesianClassifier and Evaluator.
// Implementations must not retain the reports they are given.
type Observer interface {
	OutOfVocabulary(n int)
	Classified(label Label)
	Evaluated(report *ErrorReport)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) OutOfVocabulary(int)    {}
func (NopObserver) Classified(Label)       {}
func (NopObserver) Evaluated(*ErrorReport) {}
