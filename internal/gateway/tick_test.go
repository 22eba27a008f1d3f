package gateway

import (
	"fmt"
	"testing"

	"comstar_go/internal/domain"
)

// depthPayload builds a full 6-level XBond depth push.
func depthPayload() Payload {
	data := Payload{
		"symbol":      "204001",
		"settle_type": "T1",
		"exchange":    "Exchange.XBOND",
		"datetime":    "20240105 10:30:00.500",
		"name":        "GC004",
		"volume":      50000000.0,
		"last_price":  2.55,
		"open_price":  2.50,
		"high_price":  2.60,
		"low_price":   2.45,
		"pre_close":   2.52,
	}
	for i := 1; i <= 6; i++ {
		data[fmt.Sprintf("bid_price_%d", i)] = 99.0 + float64(i)/100
		data[fmt.Sprintf("bid_volume_%d", i)] = float64(i) * 10_000_000
		data[fmt.Sprintf("ask_price_%d", i)] = 100.0 + float64(i)/100
		data[fmt.Sprintf("ask_volume_%d", i)] = float64(i) * 20_000_000
	}
	return data
}

func TestParseDepthTickLevelShift(t *testing.T) {
	tick := parseDepthTick(depthPayload())

	if tick.Symbol != "204001_T1" {
		t.Errorf("symbol = %q", tick.Symbol)
	}
	if tick.Exchange != domain.ExchangeXBOND {
		t.Errorf("exchange = %q", tick.Exchange)
	}

	// Canonical level 1 is raw level 2, canonical 5 is raw 6.
	if tick.BidPrice[0] != 99.02 {
		t.Errorf("bid level 1 = %v; want raw level 2 (99.02)", tick.BidPrice[0])
	}
	if tick.BidPrice[4] != 99.06 {
		t.Errorf("bid level 5 = %v; want raw level 6 (99.06)", tick.BidPrice[4])
	}
	if tick.AskPrice[0] != 100.02 {
		t.Errorf("ask level 1 = %v; want raw level 2 (100.02)", tick.AskPrice[0])
	}
	if tick.AskPrice[4] != 100.06 {
		t.Errorf("ask level 5 = %v; want raw level 6 (100.06)", tick.AskPrice[4])
	}
	if tick.BidVolume[0] != 20_000_000 || tick.AskVolume[0] != 40_000_000 {
		t.Errorf("level 1 volumes = %v/%v; want raw level 2 volumes",
			tick.BidVolume[0], tick.AskVolume[0])
	}

	// Raw level 1 is the shared public best, kept separately.
	if tick.PublicBidPrice != 99.01 || tick.PublicAskPrice != 100.01 {
		t.Errorf("public best = %v/%v; want raw level 1",
			tick.PublicBidPrice, tick.PublicAskPrice)
	}
	if tick.PublicBidVolume != 10_000_000 || tick.PublicAskVolume != 20_000_000 {
		t.Errorf("public volumes = %v/%v; want raw level 1 volumes",
			tick.PublicBidVolume, tick.PublicAskVolume)
	}
}

func TestParseDepthTickShortFeed(t *testing.T) {
	// Fewer than 6 raw levels: missing fields read as zero and the shift
	// still applies.
	data := Payload{
		"symbol":      "204001",
		"settle_type": "T0",
		"exchange":    "Exchange.XBOND",
		"datetime":    "",
		"bid_price_1": 99.01,
		"bid_price_2": 99.02,
	}

	tick := parseDepthTick(data)
	if tick.BidPrice[0] != 99.02 {
		t.Errorf("bid level 1 = %v; want 99.02", tick.BidPrice[0])
	}
	if tick.BidPrice[1] != 0 {
		t.Errorf("bid level 2 = %v; want 0 for missing raw level", tick.BidPrice[1])
	}
	if tick.PublicBidPrice != 99.01 {
		t.Errorf("public bid = %v; want raw level 1", tick.PublicBidPrice)
	}
}

// quoteTickPayload builds a nested CFETS quote tick with two bid levels
// and one ask level.
func quoteTickPayload() Payload {
	return Payload{
		"securityId": "204001",
		"symbol":     "GC004",
		"settlType":  "1",
		"datetime":   "20240105 10:30:00",
		"qdmEspMarketDataLevelMap": map[string]any{
			"1": map[string]any{
				"cleanPriceBid":   99.50,
				"orderQtyBid":     30_000_000.0,
				"mdEntryTimeBid":  "10:29:58.000",
				"quoteEntryIdBid": "QB1",
				"partyInfoBid":    map[string]any{"partyID": "PARTY-A"},
				"cleanPriceOffer":   99.54,
				"orderQtyOffer":     10_000_000.0,
				"mdEntryTimeOffer":  "10:29:59.000",
				"quoteEntryIdOffer": "QA1",
				"partyInfoOffer":    map[string]any{"partyID": "PARTY-B"},
			},
			"2": map[string]any{
				"cleanPriceBid":   99.45,
				"orderQtyBid":     20_000_000.0,
				"mdEntryTimeBid":  "10:29:50.000",
				"quoteEntryIdBid": "QB2",
				"partyInfoBid":    map[string]any{"partyID": "PARTY-C"},
			},
		},
	}
}

func TestConvertQuoteTick(t *testing.T) {
	flat := convertQuoteTick(quoteTickPayload())

	if flat.Str("symbol") != "204001" || flat.Str("name") != "GC004" {
		t.Errorf("identity fields = %q/%q", flat.Str("symbol"), flat.Str("name"))
	}
	if flat.Str("settle_type") != "T0" {
		t.Errorf("settle_type = %q; want T0 for wire settlType 1", flat.Str("settle_type"))
	}
	if flat.Float("bid_price_1") != 99.50 || flat.Float("bid_price_2") != 99.45 {
		t.Errorf("bid prices = %v/%v", flat.Float("bid_price_1"), flat.Float("bid_price_2"))
	}
	if flat.Str("bid_quoteid_2") != "QB2" || flat.Str("bid_partyid_2") != "PARTY-C" {
		t.Errorf("level 2 maker metadata = %q/%q",
			flat.Str("bid_quoteid_2"), flat.Str("bid_partyid_2"))
	}
	if flat.Has("ask_price_2") {
		t.Error("level 2 has no offer side; none should be flattened")
	}
}

func TestParseQuoteTickMidpoint(t *testing.T) {
	flat := convertQuoteTick(quoteTickPayload())
	tick := parseQuoteTick(flat)
	synthesizeLastPrice(tick)

	// Mid of 99.50/99.54 at 0.0001 granularity.
	if tick.LastPrice != 99.52 {
		t.Errorf("last price = %v; want 99.52", tick.LastPrice)
	}
	if tick.Exchange != domain.ExchangeCFETS {
		t.Errorf("exchange = %q", tick.Exchange)
	}
	if tick.Symbol != "204001_T0" {
		t.Errorf("symbol = %q", tick.Symbol)
	}
}

func TestSynthesizeLastPriceOneSided(t *testing.T) {
	tick := &domain.Tick{}
	tick.BidPrice[0] = 99.50 // no ask side
	synthesizeLastPrice(tick)
	if tick.LastPrice != 0 {
		t.Errorf("one-sided book must not synthesize a last price, got %v", tick.LastPrice)
	}
}

func TestDescaleTick(t *testing.T) {
	tick := parseDepthTick(depthPayload())
	descaleTick(tick)

	if tick.Volume != 5.0 {
		t.Errorf("volume = %v; want 5.0 (50,000,000 / 10,000,000)", tick.Volume)
	}
	if tick.BidVolume[0] != 2.0 {
		t.Errorf("bid volume 1 = %v; want 2.0", tick.BidVolume[0])
	}
	if tick.PublicBidVolume != 1.0 {
		t.Errorf("public bid volume = %v; want 1.0", tick.PublicBidVolume)
	}
}
