package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// DirectoryMetrics exposes counters/histograms for provider fetches and the HTTP API.
// A nil *DirectoryMetrics is valid and records nothing.
type DirectoryMetrics struct {
	fetchTotal     *prometheus.CounterVec
	fetchLatency   prometheus.Histogram
	doctorsLoaded  prometheus.Gauge
	requestsTotal  *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

func NewDirectoryMetrics(reg prometheus.Registerer) *DirectoryMetrics {
	m := &DirectoryMetrics{
		fetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "doctor_directory",
			Subsystem: "provider",
			Name:      "fetch_total",
			Help:      "Total provider list fetches by outcome",
		}, []string{"outcome"}),
		fetchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "doctor_directory",
			Subsystem: "provider",
			Name:      "fetch_latency_seconds",
			Help:      "Latency of provider list fetches",
			Buckets:   prometheus.DefBuckets,
		}),
		doctorsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "doctor_directory",
			Subsystem: "directory",
			Name:      "doctors_loaded",
			Help:      "Number of doctors currently loaded",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "doctor_directory",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "doctor_directory",
			Subsystem: "http",
			Name:      "request_latency_seconds",
			Help:      "Latency of HTTP requests by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.fetchTotal, m.fetchLatency, m.doctorsLoaded, m.requestsTotal, m.requestLatency)
	return m
}

// ObserveFetch records one provider fetch. outcome is "success", "http_error",
// "transport_error" or "decode_error".
func (m *DirectoryMetrics) ObserveFetch(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.fetchTotal.WithLabelValues(outcome).Inc()
	m.fetchLatency.Observe(seconds)
}

func (m *DirectoryMetrics) SetDoctorsLoaded(n int) {
	if m == nil {
		return
	}
	m.doctorsLoaded.Set(float64(n))
}

func (m *DirectoryMetrics) ObserveRequest(route, method string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.requestLatency.WithLabelValues(route).Observe(seconds)
}
