package classifier

import (
	"math"
	"math/rand"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Misclassified is a held-out document whose predicted label was wrong.
type Misclassified struct {
	Index    int
	Document Document
	Want     Label
	Got      Label
}

// ErrorReport is the outcome of one held-out evaluation.
type ErrorReport struct {
	TrainSize       int
	TestSize        int
	Errors          int
	ErrorRate       float64
	Misclassified   []Misclassified
	OutOfVocabulary int
}

// RoundsReport aggregates several independent evaluations.
type RoundsReport struct {
	Rounds        []*ErrorReport
	MeanErrorRate float64
}

// TestSizeFor converts a fraction of n documents to a test set size.
func TestSizeFor(n int, fraction float64) int {
	return int(math.Round(float64(n) * fraction))
}

// Split partitions the indices 0..n-1 into a training and a test set.
// Test indices are drawn one at a time from the remaining pool and removed
// from it, so the two sets are disjoint and together cover every index.
func Split(n, testSize int, rng *rand.Rand) (train, test []int, err error) {
	if testSize <= 0 || testSize >= n {
		return nil, nil, &DegenerateSplitError{Total: n, TestSize: testSize}
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	test = make([]int, 0, testSize)
	for i := 0; i < testSize; i++ {
		r := rng.Intn(len(pool))
		test = append(test, pool[r])
		pool = append(pool[:r], pool[r+1:]...)
	}
	return pool, test, nil
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithMode sets the vectorization mode. The default is SetMode.
func WithMode(mode Mode) EvaluatorOption {
	return func(e *Evaluator) { e.mode = mode }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) EvaluatorOption {
	return func(e *Evaluator) { e.logger = logger }
}

// WithObserver sets the receiver of diagnostic events.
func WithObserver(o Observer) EvaluatorOption {
	return func(e *Evaluator) { e.observer = o }
}

// Evaluator measures the error rate of the classifier on random held-out
// splits of a labeled corpus. It is not safe for concurrent use because it
// shares one random source between calls.
type Evaluator struct {
	rng      *rand.Rand
	mode     Mode
	logger   *zap.Logger
	observer Observer
}

// NewEvaluator returns an Evaluator drawing splits from rng. A nil rng is
// replaced by one seeded from the clock.
func NewEvaluator(rng *rand.Rand, opts ...EvaluatorOption) *Evaluator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e := &Evaluator{
		rng:      rng,
		mode:     SetMode,
		logger:   zap.NewNop(),
		observer: NopObserver{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate builds a vocabulary from all docs, trains on a random subset and
// reports how many of the testSize held-out documents are misclassified.
func (e *Evaluator) Evaluate(docs []Document, labels []Label, testSize int) (*ErrorReport, error) {
	if len(labels) != len(docs) {
		return nil, shapeMismatch("labels", len(docs), len(labels))
	}
	trainIdx, testIdx, err := Split(len(docs), testSize, e.rng)
	if err != nil {
		return nil, err
	}

	vocab := BuildVocabulary(docs)
	report := &ErrorReport{TrainSize: len(trainIdx), TestSize: len(testIdx)}

	trainVecs := make([]FeatureVector, len(trainIdx))
	trainLabels := make([]Label, len(trainIdx))
	for i, d := range trainIdx {
		var missing []OutOfVocabulary
		trainVecs[i], missing = vocab.Vectorize(docs[d], e.mode)
		report.OutOfVocabulary += len(missing)
		trainLabels[i] = labels[d]
	}
	model, err := Train(trainVecs, trainLabels)
	if err != nil {
		return nil, err
	}

	for _, d := range testIdx {
		vec, missing := vocab.Vectorize(docs[d], e.mode)
		report.OutOfVocabulary += len(missing)
		if len(missing) > 0 {
			e.logger.Debug("dropped out-of-vocabulary tokens",
				zap.Int("document", d),
				zap.Strings("tokens", lo.Map(missing, func(m OutOfVocabulary, _ int) string { return m.Token })),
			)
		}
		got, err := model.Classify(vec)
		if err != nil {
			return nil, err
		}
		e.observer.Classified(got)
		if got != labels[d] {
			report.Misclassified = append(report.Misclassified, Misclassified{
				Index:    d,
				Document: docs[d],
				Want:     labels[d],
				Got:      got,
			})
			e.logger.Debug("misclassified document",
				zap.Int("document", d),
				zap.Stringer("want", labels[d]),
				zap.Stringer("got", got),
			)
		}
	}
	report.Errors = len(report.Misclassified)
	report.ErrorRate = float64(report.Errors) / float64(report.TestSize)

	if report.OutOfVocabulary > 0 {
		e.observer.OutOfVocabulary(report.OutOfVocabulary)
	}
	e.observer.Evaluated(report)
	e.logger.Info("evaluation finished",
		zap.String("mode", e.mode.String()),
		zap.Int("vocabulary", vocab.Len()),
		zap.Int("train", report.TrainSize),
		zap.Int("test", report.TestSize),
		zap.Int("errors", report.Errors),
		zap.Float64("error_rate", report.ErrorRate),
	)
	return report, nil
}

// EvaluateRounds runs Evaluate rounds times on independent splits and
// averages the error rates.
func (e *Evaluator) EvaluateRounds(docs []Document, labels []Label, testSize, rounds int) (*RoundsReport, error) {
	if rounds < 1 {
		rounds = 1
	}
	out := &RoundsReport{Rounds: make([]*ErrorReport, 0, rounds)}
	total := 0.0
	for i := 0; i < rounds; i++ {
		report, err := e.Evaluate(docs, labels, testSize)
		if err != nil {
			return nil, err
		}
		out.Rounds = append(out.Rounds, report)
		total += report.ErrorRate
	}
	out.MeanErrorRate = total / float64(rounds)
	return out, nil
}
