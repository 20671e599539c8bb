package observability

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	AgentRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travel", Name: "agent_requests_total", Help: "Model calls per pipeline stage."},
		[]string{"category", "op", "status"}, // op: search|structure|summarize
	)
	AgentLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "travel", Name: "agent_request_duration_seconds",
			Help:    "Model call duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"category", "op"},
	)
	Fallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travel", Name: "fallbacks_total", Help: "Pipelines served from canned data."},
		[]string{"category", "reason"}, // reason: no_backend|search_failed|structure_failed|empty_results
	)
	ValidationDrops = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travel", Name: "validation_drops_total", Help: "Structured items rejected during mapping."},
		[]string{"category"},
	)
	Plans = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travel", Name: "plans_total", Help: "Plans produced."},
		[]string{"mode"}, // mode: live|degraded|fallback|cache
	)
	PlanLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "travel", Name: "plan_duration_seconds",
			Help:    "End-to-end plan assembly duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
	)
	Reports = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travel", Name: "reports_total", Help: "PDF reports written."},
		[]string{"status"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "travel", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
)

func Serve(addr string) {
	if addr == "" {
		return // disabled
	}
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Handle("/metrics", MetricsHandler(InitRegistry()))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(AgentRequests, AgentLatency, Fallbacks, ValidationDrops, Plans, PlanLatency, Reports, CacheEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveAgent(category, op string, err error, dur time.Duration) {
	AgentRequests.WithLabelValues(category, op, labelStatus(err)).Inc()
	AgentLatency.WithLabelValues(category, op).Observe(dur.Seconds())
}

func ObserveFallback(category, reason string) {
	Fallbacks.WithLabelValues(category, reason).Inc()
}

func ObserveValidationDrop(category string) {
	ValidationDrops.WithLabelValues(category).Inc()
}

func ObservePlan(mode string, dur time.Duration) {
	Plans.WithLabelValues(mode).Inc()
	PlanLatency.Observe(dur.Seconds())
}

func ObserveReport(err error) {
	Reports.WithLabelValues(labelStatus(err)).Inc()
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func labelStatus(err error) string {
	if err == nil {
		return "ok"
	}
	return "error"
}
