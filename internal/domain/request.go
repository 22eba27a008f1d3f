package domain

import "time"

// Host-originated request objects handed to the gateway's outbound builders.

// SubscribeRequest asks for market data on one instrument.
type SubscribeRequest struct {
	Symbol   string
	Exchange Exchange
}

func (r *SubscribeRequest) VTSymbol() string { return r.Symbol + "." + string(r.Exchange) }

// OrderRequest asks for a new order.
type OrderRequest struct {
	Symbol    string
	Exchange  Exchange
	Direction Direction
	Type      OrderType
	Volume    float64
	Price     float64
	Offset    Offset
	Reference string
}

func (r *OrderRequest) VTSymbol() string { return r.Symbol + "." + string(r.Exchange) }

// CreateOrder synthesizes the SUBMITTING snapshot pushed to the host right
// after a successful submission, before the venue confirms.
func (r *OrderRequest) CreateOrder(orderID, gatewayName string) Order {
	return Order{
		Symbol:      r.Symbol,
		Exchange:    r.Exchange,
		OrderID:     orderID,
		Type:        r.Type,
		Direction:   r.Direction,
		Offset:      r.Offset,
		Price:       r.Price,
		Volume:      r.Volume,
		Status:      StatusSubmitting,
		Datetime:    time.Now(),
		GatewayName: gatewayName,
	}
}

// CancelRequest asks to cancel a working order or quote.
type CancelRequest struct {
	OrderID  string
	Symbol   string
	Exchange Exchange
}

func (r *CancelRequest) VTSymbol() string { return r.Symbol + "." + string(r.Exchange) }

// QuoteRequest asks for a new two-sided maker quote.
type QuoteRequest struct {
	Symbol    string
	Exchange  Exchange
	BidPrice  float64
	BidVolume float64
	AskPrice  float64
	AskVolume float64
	Reference string
}

func (r *QuoteRequest) VTSymbol() string { return r.Symbol + "." + string(r.Exchange) }

// CreateQuote synthesizes the SUBMITTING snapshot for a just-sent quote.
func (r *QuoteRequest) CreateQuote(quoteID, gatewayName string) Quote {
	return Quote{
		Symbol:      r.Symbol,
		Exchange:    r.Exchange,
		QuoteID:     quoteID,
		BidPrice:    r.BidPrice,
		BidVolume:   r.BidVolume,
		AskPrice:    r.AskPrice,
		AskVolume:   r.AskVolume,
		BidOffset:   OffsetNone,
		AskOffset:   OffsetNone,
		Status:      StatusSubmitting,
		Datetime:    time.Now(),
		GatewayName: gatewayName,
	}
}
