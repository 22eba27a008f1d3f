package gateway

import (
	"fmt"

	"comstar_go/internal/domain"
)

// quoteLevel is the maker metadata cached for one quoted price.
type quoteLevel struct {
	Time    string
	QuoteID string
	PartyID string
}

// quoteBook caches the most recent bilateral price ladders for one
// instrument, keyed by exact price. Maker orders resolve against it: an
// order at a price with no cached level is rejected, because the venue
// requires the quote id and counterparty of the level being hit.
//
// Not self-locking; the gateway mutex guards it.
type quoteBook struct {
	bids map[float64]quoteLevel
	asks map[float64]quoteLevel
}

func newQuoteBook() *quoteBook {
	return &quoteBook{
		bids: make(map[float64]quoteLevel),
		asks: make(map[float64]quoteLevel),
	}
}

// update rebuilds both ladders in full from a flattened quote tick.
// Levels absent from the new tick are dropped, not merged: the ladder is a
// snapshot, not a delta.
func (b *quoteBook) update(flat Payload) {
	clear(b.bids)
	for i := 1; i <= 5; i++ {
		depth := fmt.Sprintf("%d", i)
		price := flat.Float("bid_price_" + depth)
		if price == 0 {
			break
		}
		b.bids[price] = quoteLevel{
			Time:    flat.Str("bid_time_" + depth),
			QuoteID: flat.Str("bid_quoteid_" + depth),
			PartyID: flat.Str("bid_partyid_" + depth),
		}
	}

	clear(b.asks)
	for i := 1; i <= 5; i++ {
		depth := fmt.Sprintf("%d", i)
		price := flat.Float("ask_price_" + depth)
		if price == 0 {
			break
		}
		b.asks[price] = quoteLevel{
			Time:    flat.Str("ask_time_" + depth),
			QuoteID: flat.Str("ask_quoteid_" + depth),
			PartyID: flat.Str("ask_partyid_" + depth),
		}
	}
}

// lookup resolves the ladder level a taker order would hit: a LONG order
// lifts an ask, a SHORT order hits a bid. Absence is a normal outcome;
// the market moved or the level was never quoted.
func (b *quoteBook) lookup(direction domain.Direction, price float64) (quoteLevel, bool) {
	if direction == domain.DirectionLong {
		lv, ok := b.asks[price]
		return lv, ok
	}
	lv, ok := b.bids[price]
	return lv, ok
}
