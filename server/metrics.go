package server

import (
	"errors"
	"time"

	"github.com/aouyang1/go-predictor/binding"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK       = "ok"
	unknownFunction = "unknown"
)

// Metrics records calls made through the binding on a private registry.
type Metrics struct {
	registry *prometheus.Registry
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		calls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "predictor_calls_total",
				Help: "Total number of predictor function calls by outcome",
			},
			[]string{"function", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "predictor_call_duration_seconds",
				Help:    "Duration of predictor function calls in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-6, 10, 7),
			},
			[]string{"function"},
		),
	}
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observe records a single call. The outcome is the host error type or ok.
func (m *Metrics) Observe(function string, err error, d time.Duration) {
	outcome := outcomeOK
	if err != nil {
		outcome = string(binding.RuntimeError)
		var hostErr *binding.HostError
		if errors.As(err, &hostErr) {
			outcome = string(hostErr.Type)
		}
	}
	m.calls.WithLabelValues(function, outcome).Inc()
	m.duration.WithLabelValues(function).Observe(d.Seconds())
}

// instrumentedCaller observes every call made through the wrapped caller. Names the caller does
// not register are observed as unknown.
type instrumentedCaller struct {
	binding.Caller
	metrics *Metrics
	known   map[string]struct{}
}

func newInstrumentedCaller(caller binding.Caller, metrics *Metrics) *instrumentedCaller {
	known := make(map[string]struct{})
	for _, fn := range caller.Functions() {
		known[fn.Name] = struct{}{}
	}
	return &instrumentedCaller{
		Caller:  caller,
		metrics: metrics,
		known:   known,
	}
}

func (c *instrumentedCaller) Call(name string, args ...any) (any, error) {
	start := time.Now()
	res, err := c.Caller.Call(name, args...)

	label := name
	if _, ok := c.known[name]; !ok {
		label = unknownFunction
	}
	c.metrics.Observe(label, err, time.Since(start))
	return res, err
}
