package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	listQueryRequests    *prometheus.CounterVec
	listQueryDuration    prometheus.Histogram
	customerCreatedTotal *prometheus.CounterVec
	customerUpdatedTotal *prometheus.CounterVec
	customerDeletedTotal prometheus.Counter
	customerExportTotal  *prometheus.CounterVec
	customersByStatus    *prometheus.GaugeVec
	httpErrorsTotal      *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		listQueryRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_list_query_requests_total",
				Help: "Total number of customer list queries",
			},
			[]string{"status"},
		),
		listQueryDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "customer_list_query_duration_seconds",
				Help:    "Customer list query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		customerCreatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_created_total",
				Help: "Total number of customers created",
			},
			[]string{"status"},
		),
		customerUpdatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_updated_total",
				Help: "Total number of customer updates",
			},
			[]string{"status"},
		),
		customerDeletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "customer_deleted_total",
				Help: "Total number of customers deleted",
			},
		),
		customerExportTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_export_total",
				Help: "Total number of customer exports by format",
			},
			[]string{"format"},
		),
		customersByStatus: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "customers_by_status",
				Help: "Current number of customers per status",
			},
			[]string{"status"},
		),
		httpErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_errors_total",
				Help: "Total number of HTTP errors by code",
			},
			[]string{"code"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "customer_list_query":
		if status != "" {
			m.listQueryRequests.WithLabelValues(status).Inc()
		}
	case "customer_created":
		m.customerCreatedTotal.WithLabelValues(status).Inc()
	case "customer_updated":
		m.customerUpdatedTotal.WithLabelValues(status).Inc()
	case "customer_deleted":
		m.customerDeletedTotal.Inc()
	case "customer_export":
		if format := tags["format"]; format != "" {
			m.customerExportTotal.WithLabelValues(format).Inc()
		}
	case "http_error":
		if code := tags["code"]; code != "" {
			m.httpErrorsTotal.WithLabelValues(code).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "customer_list_query":
		m.listQueryDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "customers_by_status":
		if status := tags["status"]; status != "" {
			m.customersByStatus.WithLabelValues(status).Set(value)
		}
	}
}
