package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "videoplayer"

// Metrics holds Prometheus counters and gauges for the video player.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry             *prometheus.Registry
	commandsTotal        *prometheus.CounterVec
	commandFailuresTotal *prometheus.CounterVec
	videosPlayedTotal    prometheus.Counter
	playlists            prometheus.Gauge
	debugRequestsTotal   prometheus.Counter
	debugErrorsTotal     prometheus.Counter
}

// New creates and registers the player metrics on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	commandsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "commands_total",
		Help:      "Total number of shell commands dispatched",
	}, []string{"command"})
	commandFailuresTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "command_failures_total",
		Help:      "Total number of shell commands that were rejected",
	}, []string{"command"})
	videosPlayedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "videos_played_total",
		Help:      "Total number of videos started",
	})
	playlists := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "playlists",
		Help:      "Number of playlists that currently exist",
	})
	debugRequestsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "debug_requests_total",
		Help:      "Total number of requests to the debug listener",
	})
	debugErrorsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "debug_errors_total",
		Help:      "Total number of debug listener responses with error status (4xx or 5xx)",
	})

	registry.MustRegister(
		commandsTotal,
		commandFailuresTotal,
		videosPlayedTotal,
		playlists,
		debugRequestsTotal,
		debugErrorsTotal,
	)

	return &Metrics{
		registry:             registry,
		commandsTotal:        commandsTotal,
		commandFailuresTotal: commandFailuresTotal,
		videosPlayedTotal:    videosPlayedTotal,
		playlists:            playlists,
		debugRequestsTotal:   debugRequestsTotal,
		debugErrorsTotal:     debugErrorsTotal,
	}
}

// IncCommand increments the dispatched command counter.
func (m *Metrics) IncCommand(command string) {
	if m == nil {
		return
	}
	m.commandsTotal.WithLabelValues(command).Inc()
}

// IncCommandFailure increments the rejected command counter.
func (m *Metrics) IncCommandFailure(command string) {
	if m == nil {
		return
	}
	m.commandFailuresTotal.WithLabelValues(command).Inc()
}

// IncVideosPlayed increments the videos played counter.
func (m *Metrics) IncVideosPlayed() {
	if m == nil {
		return
	}
	m.videosPlayedTotal.Inc()
}

// SetPlaylists sets the playlists gauge.
func (m *Metrics) SetPlaylists(n int) {
	if m == nil {
		return
	}
	m.playlists.Set(float64(n))
}

// IncDebugRequests increments the debug listener request counter.
func (m *Metrics) IncDebugRequests() {
	m.debugRequestsTotal.Inc()
}

// IncDebugErrors increments the debug listener error counter.
func (m *Metrics) IncDebugErrors() {
	m.debugErrorsTotal.Inc()
}

// Handler returns an http.Handler that serves the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
