package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	classifier "github.com/samuel/go-naivebayes"
)

// Recorder turns classifier events into Prometheus metrics. It implements
// classifier.Observer.
type Recorder struct {
	registry *prometheus.Registry

	oovTokens       prometheus.Counter
	classifications *prometheus.CounterVec
	evaluations     prometheus.Counter
	errorRate       prometheus.Gauge
	misclassified   prometheus.Counter
}

var _ classifier.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		oovTokens: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nbayes",
			Name:      "oov_tokens_total",
			Help:      "Tokens dropped during vectorization because they are not in the vocabulary",
		}),
		classifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "nbayes",
				Name:      "classifications_total",
				Help:      "Documents classified, by predicted label",
			},
			[]string{"label"},
		),
		evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nbayes",
			Name:      "evaluations_total",
			Help:      "Held-out evaluations run",
		}),
		errorRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "nbayes",
			Name:      "evaluation_error_rate",
			Help:      "Error rate of the most recent evaluation",
		}),
		misclassified: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nbayes",
			Name:      "misclassified_total",
			Help:      "Held-out documents given the wrong label",
		}),
	}
	r.registry.MustRegister(r.oovTokens, r.classifications, r.evaluations, r.errorRate, r.misclassified)
	return r
}

// Registry returns the registry the metrics are registered on.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// OutOfVocabulary implements classifier.Observer.
func (r *Recorder) OutOfVocabulary(n int) {
	r.oovTokens.Add(float64(n))
}

// Classified implements classifier.Observer.
func (r *Recorder) Classified(label classifier.Label) {
	r.classifications.WithLabelValues(label.String()).Inc()
}

// Evaluated implements classifier.Observer.
func (r *Recorder) Evaluated(report *classifier.ErrorReport) {
	r.evaluations.Inc()
	r.errorRate.Set(report.ErrorRate)
	r.misclassified.Add(float64(report.Errors))
}

// WriteTextfile writes the current metric values in the text exposition
// format, for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
