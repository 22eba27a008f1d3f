package domain

import "time"

// Canonical trading entities pushed to the host platform. All of them are
// value objects; the gateway never retains a pointer after posting.

// Tick is a per-instrument market snapshot with up to 5 depth levels.
// For the anonymous market the shared top-of-book is kept separately in the
// Public* fields and is NOT part of the depth levels.
type Tick struct {
	Symbol   string
	Exchange Exchange
	Name     string
	Datetime time.Time

	Volume    float64
	LastPrice float64
	OpenPrice float64
	HighPrice float64
	LowPrice  float64
	PreClose  float64

	BidPrice  [5]float64
	BidVolume [5]float64
	AskPrice  [5]float64
	AskVolume [5]float64

	PublicBidPrice  float64
	PublicAskPrice  float64
	PublicBidVolume float64
	PublicAskVolume float64

	GatewayName string
	LocalTime   time.Time
}

// VTSymbol is the host-facing instrument id, "<symbol>.<exchange>".
func (t *Tick) VTSymbol() string { return t.Symbol + "." + string(t.Exchange) }

// Order is a working or finished order.
type Order struct {
	Symbol    string
	Exchange  Exchange
	OrderID   string
	Type      OrderType
	Direction Direction
	Offset    Offset
	Price     float64
	Volume    float64
	Traded    float64
	Status    Status
	Datetime  time.Time

	GatewayName string
}

// VTOrderID is the host-facing composite id, "<gateway>.<orderid>".
func (o *Order) VTOrderID() string { return o.GatewayName + "." + o.OrderID }

func (o *Order) VTSymbol() string { return o.Symbol + "." + string(o.Exchange) }

// Trade is a single fill against an order.
type Trade struct {
	Symbol    string
	Exchange  Exchange
	OrderID   string
	TradeID   string
	Direction Direction
	Offset    Offset
	Price     float64
	Volume    float64
	Datetime  time.Time

	GatewayName string
}

func (t *Trade) VTOrderID() string { return t.GatewayName + "." + t.OrderID }
func (t *Trade) VTTradeID() string { return t.GatewayName + "." + t.TradeID }

// Quote is a two-sided maker quote.
type Quote struct {
	Symbol    string
	Exchange  Exchange
	QuoteID   string
	BidPrice  float64
	BidVolume float64
	AskPrice  float64
	AskVolume float64
	BidOffset Offset
	AskOffset Offset
	Status    Status
	Datetime  time.Time

	GatewayName string
}

func (q *Quote) VTQuoteID() string { return q.GatewayName + "." + q.QuoteID }

// Contract holds static instrument attributes. Size is the lot multiplier
// in natural units after the gateway rescales it.
type Contract struct {
	Symbol    string
	Exchange  Exchange
	Name      string
	Product   Product
	Size      int64
	PriceTick float64
	MinVolume float64

	GatewayName string
}

func (c *Contract) VTSymbol() string { return c.Symbol + "." + string(c.Exchange) }

// LogEntry is a gateway log line surfaced to the host UI.
type LogEntry struct {
	Msg         string
	Level       int
	Time        time.Time
	GatewayName string
}
