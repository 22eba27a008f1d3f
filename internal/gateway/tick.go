package gateway

import (
	"fmt"

	"comstar_go/internal/codec"
	"comstar_go/internal/domain"
	"comstar_go/pkg/quant"
)

// XBond depth payloads multiplex two feeds in one message: raw level 1 is
// the shared public top-of-book, raw levels 2-6 are the subscriber's own
// private depth. The canonical tick shifts raw 2-6 into levels 1-5 and
// keeps raw 1 in the Public* fields, so the host never mistakes the shared
// best for its own price priority.
func parseDepthTick(data Payload) *domain.Tick {
	exchange, _ := codec.DecodeExchange(data.Str("exchange"))

	tick := &domain.Tick{
		Symbol:    codec.JoinSymbol(data.Str("symbol"), data.Str("settle_type")),
		Exchange:  exchange,
		Name:      data.Str("name"),
		Datetime:  codec.ParseTimestamp(data.Str("datetime")),
		Volume:    data.Float("volume"),
		LastPrice: data.Float("last_price"),
		OpenPrice: data.Float("open_price"),
		HighPrice: data.Float("high_price"),
		LowPrice:  data.Float("low_price"),
		PreClose:  data.Float("pre_close"),
	}

	for i := 0; i < 5; i++ {
		raw := i + 2 // level shift: canonical 1..5 <- raw 2..6
		tick.BidPrice[i] = data.Float(fmt.Sprintf("bid_price_%d", raw))
		tick.BidVolume[i] = data.Float(fmt.Sprintf("bid_volume_%d", raw))
		tick.AskPrice[i] = data.Float(fmt.Sprintf("ask_price_%d", raw))
		tick.AskVolume[i] = data.Float(fmt.Sprintf("ask_volume_%d", raw))
	}

	tick.PublicBidPrice = data.Float("bid_price_1")
	tick.PublicAskPrice = data.Float("ask_price_1")
	tick.PublicBidVolume = data.Float("bid_volume_1")
	tick.PublicAskVolume = data.Float("ask_volume_1")

	return tick
}

// convertQuoteTick flattens the nested CFETS quote-tick structure into the
// flat field layout shared with depth ticks. Depths are keyed "1".."10";
// iteration stops at the first missing depth. Flattened levels also carry
// the maker metadata (entry time, quote id, counterparty id) consumed by
// the quote book.
func convertQuoteTick(data Payload) Payload {
	settle := codec.SettleT1
	if data.Str("settlType") == "1" {
		settle = codec.SettleT0
	}

	flat := Payload{
		"datetime":    data.Str("datetime"),
		"symbol":      data.Str("securityId"),
		"name":        data.Str("symbol"),
		"exchange":    domain.ExchangeCFETS.Wire(),
		"settle_type": settle,
	}

	levels := data.Map("qdmEspMarketDataLevelMap")

	for i := 1; i <= 10; i++ {
		depth := fmt.Sprintf("%d", i)
		d := levels.Map(depth)
		if d == nil {
			break
		}

		if d.Has("cleanPriceBid") {
			flat["bid_price_"+depth] = d.Float("cleanPriceBid")
			flat["bid_volume_"+depth] = d.Float("orderQtyBid")
			flat["bid_time_"+depth] = d.Str("mdEntryTimeBid")
			flat["bid_quoteid_"+depth] = d.Str("quoteEntryIdBid")
			flat["bid_partyid_"+depth] = d.Map("partyInfoBid").Str("partyID")
		}

		if d.Has("cleanPriceOffer") {
			flat["ask_price_"+depth] = d.Float("cleanPriceOffer")
			flat["ask_volume_"+depth] = d.Float("orderQtyOffer")
			flat["ask_time_"+depth] = d.Str("mdEntryTimeOffer")
			flat["ask_quoteid_"+depth] = d.Str("quoteEntryIdOffer")
			flat["ask_partyid_"+depth] = d.Map("partyInfoOffer").Str("partyID")
		}
	}

	return flat
}

// parseQuoteTick builds the canonical tick from a flattened quote tick.
// Levels beyond 5 are dropped; the canonical shape carries 5.
func parseQuoteTick(data Payload) *domain.Tick {
	exchange, _ := codec.DecodeExchange(data.Str("exchange"))

	tick := &domain.Tick{
		Symbol:   codec.JoinSymbol(data.Str("symbol"), data.Str("settle_type")),
		Exchange: exchange,
		Name:     data.Str("name"),
		Datetime: codec.ParseTimestamp(data.Str("datetime")),
	}

	for i := 0; i < 5; i++ {
		depth := fmt.Sprintf("%d", i+1)
		tick.BidPrice[i] = data.Float("bid_price_" + depth)
		tick.BidVolume[i] = data.Float("bid_volume_" + depth)
		tick.AskPrice[i] = data.Float("ask_price_" + depth)
		tick.AskVolume[i] = data.Float("ask_volume_" + depth)
	}

	return tick
}

// quoteMidTick is the price granularity of the synthesized quote-tick
// last price.
const quoteMidTick = 0.0001

// synthesizeLastPrice sets the last price of a quote tick to the rounded
// midpoint of the best bid/ask when both sides are present.
func synthesizeLastPrice(tick *domain.Tick) {
	if tick.BidPrice[0] == 0 || tick.AskPrice[0] == 0 {
		return
	}
	tick.LastPrice = quant.RoundToTick(
		quant.Midpoint(tick.BidPrice[0], tick.AskPrice[0]), quoteMidTick)
}

// descaleTick converts every volume field from vendor lot quantity to
// natural units.
func descaleTick(tick *domain.Tick) {
	tick.Volume = quant.DescaleVolume(tick.Volume)
	for i := 0; i < 5; i++ {
		tick.BidVolume[i] = quant.DescaleVolume(tick.BidVolume[i])
		tick.AskVolume[i] = quant.DescaleVolume(tick.AskVolume[i])
	}
	tick.PublicBidVolume = quant.DescaleVolume(tick.PublicBidVolume)
	tick.PublicAskVolume = quant.DescaleVolume(tick.PublicAskVolume)
}
