// Package metrics exposes the Prometheus instruments served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AIGenerations counts content generations by kind and by source (ai when the
// provider answered, fallback when local templates were substituted).
var AIGenerations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "brandkit_ai_generations_total",
		Help: "Content generations by kind and source.",
	},
	[]string{"kind", "source"},
)

// StoreFallbacks counts dual-store operations that fell back to the flat-file
// store after a primary store failure.
var StoreFallbacks = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "brandkit_store_fallbacks_total",
		Help: "Dual-store fallbacks to the flat-file store by collection and operation.",
	},
	[]string{"collection", "operation"},
)
