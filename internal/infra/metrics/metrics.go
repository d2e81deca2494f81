// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels shared by the counters below.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeNotFound = "not_found"
	OutcomeEmpty    = "empty"
	OutcomeLimited  = "rate_limited"
	OutcomeSkipped  = "skipped"
)

// Recorder is used by the engine, adapters and workers.
type Recorder interface {
	RecordPoll(outcome string, duration time.Duration)
	RecordCleanup(outcome string)
	RecordGeocode(outcome string)
	RecordLocationWrite(op, outcome string)
	RecordShareResolve(outcome string)
	RecordPush(outcome string, count int)
	SetActiveSessions(n int)
}

// Collector is the Prometheus implementation of Recorder.
type Collector struct {
	polls          *prometheus.CounterVec
	pollLatency    prometheus.Histogram
	cleanups       *prometheus.CounterVec
	geocodes       *prometheus.CounterVec
	writes         *prometheus.CounterVec
	shareResolves  *prometheus.CounterVec
	pushes         *prometheus.CounterVec
	activeSessions prometheus.Gauge
}

// NewCollector creates a Collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		polls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lastseen_sync_polls_total",
			Help: "Synchronization polls by outcome.",
		}, []string{"outcome"}),
		pollLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lastseen_sync_poll_duration_seconds",
			Help:    "Duration of one synchronization poll.",
			Buckets: prometheus.DefBuckets,
		}),
		cleanups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lastseen_cleanup_deletes_total",
			Help: "Opportunistic deletes of expired own records by outcome.",
		}, []string{"outcome"}),
		geocodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lastseen_geocode_lookups_total",
			Help: "Reverse geocoding lookups by outcome.",
		}, []string{"outcome"}),
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lastseen_location_writes_total",
			Help: "Owner-initiated location writes by operation and outcome.",
		}, []string{"op", "outcome"}),
		shareResolves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lastseen_share_resolves_total",
			Help: "Public share link resolutions by outcome.",
		}, []string{"outcome"}),
		pushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lastseen_push_messages_total",
			Help: "Push notifications sent to follower devices by outcome.",
		}, []string{"outcome"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lastseen_active_sessions",
			Help: "Viewer sessions currently holding a running sync engine.",
		}),
	}

	reg.MustRegister(
		c.polls,
		c.pollLatency,
		c.cleanups,
		c.geocodes,
		c.writes,
		c.shareResolves,
		c.pushes,
		c.activeSessions,
	)

	return c
}

func (c *Collector) RecordPoll(outcome string, duration time.Duration) {
	c.polls.WithLabelValues(outcome).Inc()
	c.pollLatency.Observe(duration.Seconds())
}

func (c *Collector) RecordCleanup(outcome string) {
	c.cleanups.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordGeocode(outcome string) {
	c.geocodes.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordLocationWrite(op, outcome string) {
	c.writes.WithLabelValues(op, outcome).Inc()
}

func (c *Collector) RecordShareResolve(outcome string) {
	c.shareResolves.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordPush(outcome string, count int) {
	c.pushes.WithLabelValues(outcome).Add(float64(count))
}

func (c *Collector) SetActiveSessions(n int) {
	c.activeSessions.Set(float64(n))
}

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewRecorder wires the process-wide collector into reg.
func NewRecorder(reg *prometheus.Registry) Recorder {
	return NewCollector(reg)
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards every measurement.
type Nop struct{}

func (Nop) RecordPoll(string, time.Duration)   {}
func (Nop) RecordCleanup(string)               {}
func (Nop) RecordGeocode(string)               {}
func (Nop) RecordLocationWrite(string, string) {}
func (Nop) RecordShareResolve(string)          {}
func (Nop) RecordPush(string, int)             {}
func (Nop) SetActiveSessions(int)              {}
