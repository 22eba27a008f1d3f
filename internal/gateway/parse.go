package gateway

import (
	"comstar_go/internal/codec"
	"comstar_go/internal/domain"
)

// Parsers for vendor push payloads. Unknown enum values decode to the zero
// value (absent): the adapter stays up through minor vendor payload drift
// and the codec logs the dropped value.

func parseOrder(data Payload) domain.Order {
	exchange, _ := codec.DecodeExchange(data.Str("exchange"))
	orderType, _ := codec.DecodeOrderType(data.Str("type"))
	direction, _ := codec.DecodeDirection(data.Str("direction"))
	status, _ := codec.DecodeStatus(data.Str("status"))

	return domain.Order{
		Symbol:    codec.JoinSymbol(data.Str("symbol"), data.Str("settle_type")),
		Exchange:  exchange,
		OrderID:   data.Str("orderid"),
		Type:      orderType,
		Direction: direction,
		Offset:    domain.OffsetNone,
		Price:     data.Float("price"),
		Volume:    data.Float("volume"),
		Traded:    data.Float("traded"),
		Status:    status,
		Datetime:  codec.GenerateTimestamp(data.Str("time")),
	}
}

func parseTrade(data Payload) domain.Trade {
	exchange, _ := codec.DecodeExchange(data.Str("exchange"))
	direction, _ := codec.DecodeDirection(data.Str("direction"))

	return domain.Trade{
		Symbol:    codec.JoinSymbol(data.Str("symbol"), data.Str("settle_type")),
		Exchange:  exchange,
		OrderID:   data.Str("orderid"),
		TradeID:   data.Str("tradeid"),
		Direction: direction,
		Offset:    domain.OffsetNone,
		Price:     data.Float("price"),
		Volume:    data.Float("volume"),
		Datetime:  codec.GenerateTimestamp(data.Str("time")),
	}
}

func parseQuote(data Payload) domain.Quote {
	exchange, _ := codec.DecodeExchange(data.Str("exchange"))
	status, _ := codec.DecodeStatus(data.Str("status"))

	buy := data.Map("buySideVO")
	sell := data.Map("sellSideVO")

	return domain.Quote{
		Symbol:    codec.JoinSymbol(data.Str("securityId"), buy.Str("settlType")),
		Exchange:  exchange,
		QuoteID:   data.Str("quoteid"),
		BidPrice:  buy.Float("price"),
		BidVolume: buy.Float("leaveQty"),
		AskPrice:  sell.Float("price"),
		AskVolume: sell.Float("leaveQty"),
		BidOffset: domain.OffsetNone,
		AskOffset: domain.OffsetNone,
		Status:    status,
		Datetime:  codec.GenerateTimestamp(data.Str("transactTime")),
	}
}

// parseContract materializes one contract for a given settlement speed.
// The caller fans out over settle type and exchange.
func parseContract(data Payload, settle string) domain.Contract {
	product, _ := codec.DecodeProduct(data.Str("product"))

	return domain.Contract{
		Symbol:    codec.JoinSymbol(data.Str("symbol"), settle),
		Name:      data.Str("name"),
		Product:   product,
		Size:      data.Int("size"),
		PriceTick: data.Float("pricetick"),
		MinVolume: data.Float("min_volume"),
	}
}

func parseLog(data Payload) domain.LogEntry {
	return domain.LogEntry{
		Msg:   data.Str("msg"),
		Level: int(data.Int("level")),
		Time:  codec.ParseTimestamp(data.Str("time")),
	}
}
