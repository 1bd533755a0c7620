// Package metrics exposes Prometheus instrumentation for the
// connection layer and the mapping extractor. Metrics are registered
// once via InitRegistry, and every recorder method is a no-op before
// that call so callers never need a nil check of their own.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mu       sync.RWMutex
	registry *prometheus.Registry
	m        *collectors
)

type collectors struct {
	connectionsAccepted *prometheus.CounterVec
	connectionsClosed   *prometheus.CounterVec
	framesTotal         *prometheus.CounterVec
	frameBytes          *prometheus.HistogramVec
	cipherBytes         *prometheus.CounterVec
	policyRequests      prometheus.Counter
	extractorRuns       *prometheus.CounterVec
	extractorDuration   prometheus.Histogram
	extractorMapped     prometheus.Gauge
	extractorUnmapped   prometheus.Gauge
}

// InitRegistry creates and registers every collector against a fresh
// Prometheus registry. Safe to call once at process startup; every
// recorder is a no-op until this has run.
func InitRegistry() *prometheus.Registry {
	mu.Lock()
	defer mu.Unlock()

	registry = prometheus.NewRegistry()
	reg := promauto.With(registry)

	m = &collectors{
		connectionsAccepted: reg.NewCounterVec(prometheus.CounterOpts{
			Name: "realmcore_connections_accepted_total",
			Help: "Total number of connections accepted or dialed, by role.",
		}, []string{"role"}),
		connectionsClosed: reg.NewCounterVec(prometheus.CounterOpts{
			Name: "realmcore_connections_closed_total",
			Help: "Total number of connections closed, by role and reason.",
		}, []string{"role", "reason"}),
		framesTotal: reg.NewCounterVec(prometheus.CounterOpts{
			Name: "realmcore_frames_total",
			Help: "Total number of frames encoded or decoded, by direction.",
		}, []string{"direction"}),
		frameBytes: reg.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "realmcore_frame_bytes",
			Help:    "Distribution of frame payload sizes in bytes, by direction.",
			Buckets: []float64{8, 32, 128, 512, 2048, 8192, 32768},
		}, []string{"direction"}),
		cipherBytes: reg.NewCounterVec(prometheus.CounterOpts{
			Name: "realmcore_cipher_bytes_total",
			Help: "Total number of bytes passed through the RC4 keystream, by direction.",
		}, []string{"direction"}),
		policyRequests: reg.NewCounter(prometheus.CounterOpts{
			Name: "realmcore_policy_requests_total",
			Help: "Total number of Flash policy-file requests detected on accept.",
		}),
		extractorRuns: reg.NewCounterVec(prometheus.CounterOpts{
			Name: "realmcore_extractor_runs_total",
			Help: "Total number of extraction runs, by outcome.",
		}, []string{"outcome"}),
		extractorDuration: reg.NewHistogram(prometheus.HistogramOpts{
			Name:    "realmcore_extractor_duration_seconds",
			Help:    "Duration of a full Parse+ExtractMappings+ExtractParameters run.",
			Buckets: prometheus.DefBuckets,
		}),
		extractorMapped: reg.NewGauge(prometheus.GaugeOpts{
			Name: "realmcore_extractor_mapped_kinds",
			Help: "Number of kinds mapped by the most recent successful extraction run.",
		}),
		extractorUnmapped: reg.NewGauge(prometheus.GaugeOpts{
			Name: "realmcore_extractor_unmapped_kinds",
			Help: "Number of registry kinds left unmapped by the most recent extraction run.",
		}),
	}

	return registry
}

// IsEnabled reports whether InitRegistry has run.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return m != nil
}

// GetRegistry returns the registry created by InitRegistry, or nil if
// metrics are disabled.
func GetRegistry() *prometheus.Registry {
	mu.RLock()
	defer mu.RUnlock()
	return registry
}

// ConnectionAccepted records a newly accepted or dialed connection.
func ConnectionAccepted(role string) {
	mu.RLock()
	defer mu.RUnlock()
	if m == nil {
		return
	}
	m.connectionsAccepted.WithLabelValues(role).Inc()
}

// ConnectionClosed records a connection teardown.
func ConnectionClosed(role, reason string) {
	mu.RLock()
	defer mu.RUnlock()
	if m == nil {
		return
	}
	m.connectionsClosed.WithLabelValues(role, reason).Inc()
}

// FrameObserved records one frame's direction and payload size.
func FrameObserved(direction string, payloadBytes int) {
	mu.RLock()
	defer mu.RUnlock()
	if m == nil {
		return
	}
	m.framesTotal.WithLabelValues(direction).Inc()
	m.frameBytes.WithLabelValues(direction).Observe(float64(payloadBytes))
}

// CipherBytesProcessed records bytes run through the keystream.
func CipherBytesProcessed(direction string, n int) {
	mu.RLock()
	defer mu.RUnlock()
	if m == nil {
		return
	}
	m.cipherBytes.WithLabelValues(direction).Add(float64(n))
}

// PolicyRequestDetected records a Flash policy-file preamble.
func PolicyRequestDetected() {
	mu.RLock()
	defer mu.RUnlock()
	if m == nil {
		return
	}
	m.policyRequests.Inc()
}

// ExtractorRun records the outcome and duration of one extraction run,
// along with the mapped/unmapped kind counts on success.
func ExtractorRun(outcome string, duration time.Duration, mapped, unmapped int) {
	mu.RLock()
	defer mu.RUnlock()
	if m == nil {
		return
	}
	m.extractorRuns.WithLabelValues(outcome).Inc()
	m.extractorDuration.Observe(duration.Seconds())
	if outcome == "success" {
		m.extractorMapped.Set(float64(mapped))
		m.extractorUnmapped.Set(float64(unmapped))
	}
}
