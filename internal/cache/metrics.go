package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultHit  = "hit"
	resultMiss = "miss"
	resultJoin = "join"
)

type metrics struct {
	requests      *prometheus.CounterVec
	loadFailures  prometheus.Counter
	invalidations prometheus.Counter
	evictions     prometheus.Counter
}

// newMetrics builds the cache counters. A nil registerer leaves them unregistered.
func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "snapgram_cache",
				Name:      "requests_total",
				Help:      "Cache requests by outcome: hit, miss (load started) or join (in-flight load shared).",
			},
			[]string{"result"},
		),
		loadFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "snapgram_cache",
				Name:      "load_failures_total",
				Help:      "Loads whose loader returned an error.",
			},
		),
		invalidations: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "snapgram_cache",
				Name:      "invalidations_total",
				Help:      "Keys moved to stale by invalidation.",
			},
		),
		evictions: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: "snapgram_cache",
				Name:      "evictions_total",
				Help:      "Unsubscribed stale entries discarded after the gc time.",
			},
		),
	}
}
