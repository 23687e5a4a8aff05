// Package metrics exposes Prometheus collectors for resolver outcomes, tool
// calls, chat requests and RPCs.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tripmate"

// Metrics owns a private registry so several instances can coexist in tests.
type Metrics struct {
	Registry *prometheus.Registry

	Resolutions  *prometheus.CounterVec
	ToolCalls    *prometheus.CounterVec
	ToolLatency  *prometheus.HistogramVec
	ChatRequests *prometheus.CounterVec
	ChatLatency  *prometheus.HistogramVec
	RPCRequests  *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "resolutions_total", Help: "Attraction availability resolutions by outcome."},
			[]string{"outcome"},
		),
		ToolCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "tool_calls_total", Help: "Tool executions."},
			[]string{"tool", "status"},
		),
		ToolLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "tool_call_duration_seconds",
				Help:    "Tool execution duration seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"tool"},
		),
		ChatRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "chat_requests_total", Help: "Chat requests by assistant mode."},
			[]string{"mode", "status"},
		),
		ChatLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "chat_request_duration_seconds",
				Help:    "Chat request duration seconds.",
				Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"mode"},
		),
		RPCRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "rpc_requests_total", Help: "RPC requests by procedure and code."},
			[]string{"procedure", "code"},
		),
	}
	m.Registry.MustRegister(
		m.Resolutions, m.ToolCalls, m.ToolLatency, m.ChatRequests, m.ChatLatency, m.RPCRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// ObserveResolution matches core.Observer.
func (m *Metrics) ObserveResolution(outcome string) {
	m.Resolutions.WithLabelValues(outcome).Inc()
}

// ObserveTool matches tools.Observer.
func (m *Metrics) ObserveTool(tool string, err error, dur time.Duration) {
	m.ToolCalls.WithLabelValues(tool, LabelErr(err)).Inc()
	m.ToolLatency.WithLabelValues(tool).Observe(dur.Seconds())
}

func (m *Metrics) ObserveChat(mode string, err error, dur time.Duration) {
	m.ChatRequests.WithLabelValues(mode, LabelErr(err)).Inc()
	m.ChatLatency.WithLabelValues(mode).Observe(dur.Seconds())
}

func (m *Metrics) ObserveRPC(procedure, code string) {
	m.RPCRequests.WithLabelValues(procedure, code).Inc()
}

// LabelErr turns err into a low-cardinality label.
func LabelErr(err error) string {
	if err == nil {
		return "ok"
	}
	return fmt.Sprintf("%T", err)
}
