package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "genpact_relay"

// Metrics groups the relay's Prometheus collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	tokenCacheHits   prometheus.Counter
	tokenRefreshes   *prometheus.CounterVec
	answerRequests   *prometheus.CounterVec
	answerLatency    prometheus.Histogram
	answerCacheHits  prometheus.Counter
	historyDiscarded prometheus.Counter
}

// New registers all collectors on reg.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		gatherer: reg,
		tokenCacheHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_cache_hits_total",
			Help:      "Bearer tokens served from the in-memory cache.",
		}),
		tokenRefreshes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_refreshes_total",
			Help:      "Calls made to the OAuth2 token endpoint.",
		}, []string{"result"}),
		answerRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answer_requests_total",
			Help:      "Calls made to the upstream answer service.",
		}, []string{"result"}),
		answerLatency: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "answer_request_duration_seconds",
			Help:      "Latency of upstream answer service calls.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 60, 120},
		}),
		answerCacheHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answer_cache_hits_total",
			Help:      "Answers served from Redis without calling upstream.",
		}),
		historyDiscarded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_records_discarded_total",
			Help:      "Query history records dropped because the worker queue was full.",
		}),
	}
}

// Handler exposes the registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) TokenCacheHit() {
	if m == nil {
		return
	}
	m.tokenCacheHits.Inc()
}

func (m *Metrics) TokenRefresh(err error) {
	if m == nil {
		return
	}
	m.tokenRefreshes.WithLabelValues(result(err)).Inc()
}

func (m *Metrics) AnswerRequest(start time.Time, err error) {
	if m == nil {
		return
	}
	m.answerRequests.WithLabelValues(result(err)).Inc()
	m.answerLatency.Observe(time.Since(start).Seconds())
}

func (m *Metrics) AnswerCacheHit() {
	if m == nil {
		return
	}
	m.answerCacheHits.Inc()
}

func (m *Metrics) HistoryDiscarded() {
	if m == nil {
		return
	}
	m.historyDiscarded.Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
