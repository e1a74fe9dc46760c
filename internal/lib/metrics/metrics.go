// Package metrics содержит метрики Prometheus сервиса отчетов.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Значения метки outcome.
const (
	OutcomeAccepted = "accepted"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
	OutcomePending  = "pending"
	OutcomeComplete = "complete"
	OutcomeEmpty    = "empty"
	OutcomeNotFound = "not_found"
)

var (
	SubmissionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_submissions_total",
		Help: "Принятые запросы статистики по результату",
	}, []string{"outcome"})
	PollsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "report_polls_total",
		Help: "Опросы прогресса по результату",
	}, []string{"outcome"})
	CacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "report_cache_hits_total",
		Help: "Количество попаданий в кеш",
	})
	CacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "report_cache_misses_total",
		Help: "Количество промахов кеша",
	})
	EventPublishErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "report_event_publish_errors_total",
		Help: "Ошибки публикации событий в брокер",
	})
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Время обработки HTTP-запроса",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func init() {
	prometheus.MustRegister(
		SubmissionsTotal,
		PollsTotal,
		CacheHits,
		CacheMisses,
		EventPublishErrors,
		HTTPRequestDuration,
	)
}
