package gateway

import "comstar_go/internal/domain"

// orderState is the last surfaced state for one order id.
type orderState struct {
	traded float64
	status domain.Status
}

// dedupFilter suppresses repeated order/trade pushes. The venue re-sends
// full order book state after a reconnect; repeats are expected protocol
// behavior, absorbed silently and never logged as errors.
//
// Retention is unbounded for the adapter lifetime (venue session
// cardinality is small). Not self-locking; the gateway mutex guards it.
type dedupFilter struct {
	orders map[string]orderState
	trades map[string]struct{}
}

func newDedupFilter() *dedupFilter {
	return &dedupFilter{
		orders: make(map[string]orderState),
		trades: make(map[string]struct{}),
	}
}

// duplicateOrder records the push and reports whether it repeats the last
// recorded state exactly: suppressed iff both traded volume and status are
// unchanged. A change in either must be surfaced.
func (f *dedupFilter) duplicateOrder(key string, traded float64, status domain.Status) bool {
	last, seen := f.orders[key]
	if seen && last.traded == traded && last.status == status {
		return true
	}
	f.orders[key] = orderState{traded: traded, status: status}
	return false
}

// duplicateTrade records the trade id and reports whether it was already
// seen. Trades never legitimately repeat, so any recurrence is suppressed.
func (f *dedupFilter) duplicateTrade(key string) bool {
	if _, seen := f.trades[key]; seen {
		return true
	}
	f.trades[key] = struct{}{}
	return false
}

// reset clears all retained state. Hosts that cycle venue sessions can use
// this to bound retention.
func (f *dedupFilter) reset() {
	clear(f.orders)
	clear(f.trades)
}
