package infra

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Adapter counters. Low cardinality by construction: labels are fixed
// market/kind/reason classes, never instrument ids.
var (
	TicksNormalized = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "comstar_ticks_normalized_total",
		Help: "Ticks normalized and pushed to the host, by market kind.",
	}, []string{"market"})

	DuplicatesSuppressed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "comstar_duplicates_suppressed_total",
		Help: "Order/trade pushes suppressed by the dedup filter.",
	}, []string{"kind"})

	RequestsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "comstar_requests_rejected_total",
		Help: "Outbound requests rejected before reaching the venue.",
	}, []string{"reason"})
)

// Rejection reason classes for RequestsRejected.
const (
	RejectBadSymbol    = "bad_symbol"
	RejectOrderType    = "order_type"
	RejectNoQuoteLevel = "no_quote_level"
	RejectFractionLots = "fractional_lots"
)
