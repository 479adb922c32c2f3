package service

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the planner.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheLatency    prometheus.Observer
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	scoringDuration prometheus.Observer
	suggestDuration prometheus.Observer
	rankedSize      prometheus.Gauge
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	cacheLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_latency_seconds",
		Help:    "Latency for cache operations",
		Buckets: prometheus.DefBuckets,
	})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Total cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Total cache misses",
	})

	scoringDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_scoring_duration_seconds",
		Help:    "Duration of ranked score computations",
		Buckets: prometheus.DefBuckets,
	})

	suggestDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "planner_suggestion_duration_seconds",
		Help:    "Duration of suggested set computations",
		Buckets: prometheus.DefBuckets,
	})

	rankedSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "planner_ranked_activities",
		Help: "Number of activities in the latest ranked list",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, cacheLatency, cacheHits,
		cacheMisses, scoringDuration, suggestDuration, rankedSize, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		cacheLatency:    cacheLatency,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
		scoringDuration: scoringDuration,
		suggestDuration: suggestDuration,
		rankedSize:      rankedSize,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// RecordHTTPRequest tracks one completed HTTP request.
func (s *MetricsService) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if s == nil {
		return
	}
	labels := []string{method, path, strconv.Itoa(status)}
	s.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	s.requestTotal.WithLabelValues(labels...).Inc()
}

// RecordCacheOperation tracks a cache lookup outcome.
func (s *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if s == nil {
		return
	}
	s.cacheLatency.Observe(duration.Seconds())
	if hit {
		s.cacheHits.Inc()
	} else {
		s.cacheMisses.Inc()
	}
}

// RecordScoring tracks one ranked score computation.
func (s *MetricsService) RecordScoring(duration time.Duration, rankedCount int) {
	if s == nil {
		return
	}
	s.scoringDuration.Observe(duration.Seconds())
	s.rankedSize.Set(float64(rankedCount))
}

// RecordSuggestions tracks one suggested set computation.
func (s *MetricsService) RecordSuggestions(duration time.Duration) {
	if s == nil {
		return
	}
	s.suggestDuration.Observe(duration.Seconds())
}
