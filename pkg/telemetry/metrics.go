// Package telemetry holds the Prometheus metrics and the OpenTelemetry
// tracer for the engine's peripheral layers. The engine core records
// nothing; adapters and servers call the Record helpers, which are free
// no-ops until Init is called.
package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures metric registration.
type Config struct {
	// Namespace is the metrics namespace (default: "vireo").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registerer to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// Option configures metric registration.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registerer.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "vireo",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metrics holds the registered collectors.
type metrics struct {
	hostOps        *prometheus.CounterVec
	bytesSent      prometheus.Counter
	sendErrors     prometheus.Counter
	activeSessions prometheus.Gauge
}

var (
	globalMetrics *metrics
	globalMu      sync.Mutex
)

// Init registers the metrics. Calling it again is a no-op; metrics stay
// bound to the registry of the first call.
func Init(opts ...Option) {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalMetrics != nil {
		return
	}
	globalMetrics = initMetrics(config)
}

func initMetrics(config Config) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		hostOps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "host_ops_total",
			Help:        "Total host mutations sent, by operation",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		bytesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "bytes_sent_total",
			Help:        "Total encoded op bytes sent to clients",
			ConstLabels: config.ConstLabels,
		}),

		sendErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "send_errors_total",
			Help:        "Total host op send failures",
			ConstLabels: config.ConstLabels,
		}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_sessions",
			Help:        "Number of connected render sessions",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// RecordHostOp records one sent host mutation and its encoded size.
func RecordHostOp(op string, bytes int) {
	if globalMetrics != nil {
		globalMetrics.hostOps.WithLabelValues(op).Inc()
		globalMetrics.bytesSent.Add(float64(bytes))
	}
}

// RecordSendError records a failed host op send.
func RecordSendError() {
	if globalMetrics != nil {
		globalMetrics.sendErrors.Inc()
	}
}

// RecordSessionStart records a new connected session.
func RecordSessionStart() {
	if globalMetrics != nil {
		globalMetrics.activeSessions.Inc()
	}
}

// RecordSessionEnd records a session disconnect.
func RecordSessionEnd() {
	if globalMetrics != nil {
		globalMetrics.activeSessions.Dec()
	}
}
