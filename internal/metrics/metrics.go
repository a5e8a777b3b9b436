// Package metrics exposes capture, collection and HTTP metrics on a private
// prometheus registry.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dimitrije/critterdex-api/internal/models"
	"github.com/dimitrije/critterdex-api/internal/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "critterdex"

// Metrics implements services.Notifier so it can sit in the same fan-out as
// the event hub.
type Metrics struct {
	registry *prometheus.Registry

	identifyTotal      *prometheus.CounterVec
	identifyDuration   prometheus.Histogram
	sessionTransitions *prometheus.CounterVec
	sessionState       *prometheus.GaugeVec
	collectionSize     prometheus.Gauge
	collectionByRarity *prometheus.GaugeVec
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

func New() (*Metrics, error) {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.identifyTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "identifications_total",
			Help:      "Identification attempts by result",
		},
		[]string{"result"}, // success, failure, cancelled
	)
	m.identifyDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "identification_duration_seconds",
		Help:      "Time spent in the identifier",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
	})
	m.sessionTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_transitions_total",
			Help:      "Capture session transitions by target state",
		},
		[]string{"state"},
	)
	m.sessionState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "session_state",
			Help:      "1 for the current capture session state, 0 otherwise",
		},
		[]string{"state"},
	)
	m.collectionSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "collection_size",
		Help:      "Number of animals in the collection",
	})
	m.collectionByRarity = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "collection_animals",
			Help:      "Collected animals by rarity",
		},
		[]string{"rarity"},
	)
	m.httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code",
		},
		[]string{"method", "code"},
	)
	m.httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "code"},
	)

	for _, c := range m.collectors() {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}

	m.SessionStateChanged(models.SessionStatus{State: models.SessionIdle})
	return m, nil
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.identifyTotal,
		m.identifyDuration,
		m.sessionTransitions,
		m.sessionState,
		m.collectionSize,
		m.collectionByRarity,
		m.httpRequests,
		m.httpDuration,
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the prometheus exposition format.
func (m *Metrics) Handler(logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorLog:      slog.NewLogLogger(logger.Handler(), slog.LevelError),
		ErrorHandling: promhttp.HTTPErrorOnError,
	})
}

// InstrumentHandler wraps next with request counting and latency.
func (m *Metrics) InstrumentHandler(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerDuration(m.httpDuration,
		promhttp.InstrumentHandlerCounter(m.httpRequests, next))
}

// TrackGauge registers a gauge whose value is read from fn at scrape time.
func (m *Metrics) TrackGauge(name, help string, fn func() float64) error {
	return m.registry.Register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}, fn))
}

func (m *Metrics) SessionStateChanged(status models.SessionStatus) {
	m.sessionTransitions.WithLabelValues(string(status.State)).Inc()
	for _, s := range []models.SessionState{
		models.SessionIdle,
		models.SessionCapturing,
		models.SessionIdentifying,
		models.SessionPendingResult,
		models.SessionCommitted,
		models.SessionDiscarded,
	} {
		v := 0.0
		if s == status.State {
			v = 1
		}
		m.sessionState.WithLabelValues(string(s)).Set(v)
	}
}

func (m *Metrics) CollectionChanged(snapshot []models.CapturedAnimal) {
	stats := models.Summarize(snapshot)
	m.collectionSize.Set(float64(stats.Total))
	for rarity, n := range stats.ByRarity {
		m.collectionByRarity.WithLabelValues(string(rarity)).Set(float64(n))
	}
}

// InstrumentIdentifier returns an identifier that records every call made
// through next.
func (m *Metrics) InstrumentIdentifier(next services.Identifier) services.Identifier {
	return &instrumentedIdentifier{next: next, metrics: m}
}

type instrumentedIdentifier struct {
	next    services.Identifier
	metrics *Metrics
}

func (i *instrumentedIdentifier) Identify(ctx context.Context, req services.IdentifyRequest) (models.AnimalTemplate, error) {
	start := time.Now()
	tmpl, err := i.next.Identify(ctx, req)
	i.metrics.identifyDuration.Observe(time.Since(start).Seconds())

	result := "success"
	if err != nil {
		result = "failure"
		if errors.Is(err, context.Canceled) {
			result = "cancelled"
		}
	}
	i.metrics.identifyTotal.WithLabelValues(result).Inc()
	return tmpl, err
}
