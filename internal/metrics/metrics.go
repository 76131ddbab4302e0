package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "transportes",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "transportes",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "path"},
	)

	alertasMantenimiento = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "transportes",
			Name:      "mantenimiento_alertas",
			Help:      "Pending maintenance alerts by priority, as of the last sweep.",
		},
		[]string{"prioridad"},
	)

	alertasSweeps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "transportes",
			Name:      "mantenimiento_sweeps_total",
			Help:      "Maintenance alert sweeps run, by outcome.",
		},
		[]string{"success"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequests,
		httpDuration,
		alertasMantenimiento,
		alertasSweeps,
	)
}

// Handler exposes the registry in Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordHTTP observes one request. path must be the route template, not the raw URL.
func RecordHTTP(method, path string, status int, d time.Duration) {
	if path == "" {
		path = "unmatched"
	}
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// SetAlertas publishes the per-priority counts of the last sweep.
func SetAlertas(counts map[string]int) {
	for prioridad, n := range counts {
		alertasMantenimiento.WithLabelValues(prioridad).Set(float64(n))
	}
}

func RecordSweep(success bool) {
	alertasSweeps.WithLabelValues(strconv.FormatBool(success)).Inc()
}
