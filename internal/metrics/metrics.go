// Package metrics exposes analysis counters and corpus statistics in the
// Prometheus format.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gutentopics/gutentopics/internal/core/domain"
	"github.com/gutentopics/gutentopics/internal/core/ports/driven"
	"github.com/gutentopics/gutentopics/internal/logger"
)

// Ensure Recorder implements the interface.
var _ driven.AnalysisRecorder = (*Recorder)(nil)

var corpusDocumentsDesc = prometheus.NewDesc(
	"gutentopics_corpus_documents",
	"Known corpus documents by topic",
	[]string{"topic"},
	nil,
)

// collectTimeout bounds the corpus read done on each scrape.
const collectTimeout = 5 * time.Second

// CorpusCollector reads the known corpus index on each scrape.
type CorpusCollector struct {
	store driven.CorpusIndexStore
}

// Describe sends the metric descriptor to the channel.
func (c *CorpusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- corpusDocumentsDesc
}

// Collect emits one gauge per topic with its document count.
func (c *CorpusCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()

	idx, err := c.store.Load(ctx)
	if err != nil {
		logger.Error("failed to collect corpus metrics", err)
		return
	}

	counts := make(map[int]int)
	for _, topic := range idx.TopicOfDocument {
		counts[topic]++
	}
	for topic, n := range counts {
		ch <- prometheus.MustNewConstMetric(
			corpusDocumentsDesc,
			prometheus.GaugeValue,
			float64(n),
			topicLabel(topic),
		)
	}
}

// Recorder counts analyses by outcome and observes their token counts.
type Recorder struct {
	registry *prometheus.Registry
	analyses *prometheus.CounterVec
	tokens   prometheus.Histogram
}

// NewRecorder creates a recorder with its own registry. corpus may be nil,
// in which case no corpus gauges are exported.
func NewRecorder(corpus driven.CorpusIndexStore) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gutentopics_analyses_total",
			Help: "Total analyses by outcome",
		}, []string{"outcome"}),
		tokens: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gutentopics_analysis_tokens",
			Help:    "Content-word tokens kept per analysed document",
			Buckets: prometheus.ExponentialBuckets(100, 4, 8),
		}),
	}

	r.registry.MustRegister(r.analyses, r.tokens)
	r.registry.MustRegister(collectors.NewGoCollector())
	if corpus != nil {
		r.registry.MustRegister(&CorpusCollector{store: corpus})
	}
	return r
}

// RecordAnalysis counts one analysis. Tokens are only observed for
// documents that got as far as normalisation.
func (r *Recorder) RecordAnalysis(outcome domain.Outcome, tokens int) {
	r.analyses.WithLabelValues(string(outcome)).Inc()
	if tokens > 0 {
		r.tokens.Observe(float64(tokens))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func topicLabel(topic int) string {
	if topic == domain.NoTopic {
		return "none"
	}
	return strconv.Itoa(topic)
}
