package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Loader Metrics
	LoaderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "paygap_loader_duration_seconds",
		Help:    "Latency of loading the pay_gap table, connection checkout included",
		Buckets: prometheus.DefBuckets,
	})
	LoaderRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "paygap_loader_records",
		Help: "Number of records returned by the most recent load",
	})
	LoaderErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paygap_loader_errors_total",
		Help: "Load failures by kind (unavailable, query, canceled)",
	}, []string{"kind"})

	// Chart Metrics
	ChartRendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paygap_chart_renders_total",
		Help: "Chart render attempts by chart and outcome",
	}, []string{"chart", "outcome"})
	ChartRenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "paygap_chart_render_duration_seconds",
		Help:    "Time spent pivoting and drawing a chart, excluding the load",
		Buckets: prometheus.DefBuckets,
	}, []string{"chart"})

	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paygap_http_requests_total",
		Help: "HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "paygap_http_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)
