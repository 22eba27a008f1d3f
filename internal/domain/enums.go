package domain

// Wire form for every enum is "Category.Member", e.g. "Exchange.XBOND".
// The member string is stored as the Go value; Wire() adds the category.

// Exchange identifies a trading venue.
type Exchange string

const (
	ExchangeXBOND Exchange = "XBOND" // anonymous central order book
	ExchangeCFETS Exchange = "CFETS" // bilateral maker market
)

func (e Exchange) Wire() string { return "Exchange." + string(e) }

// Product is the instrument class.
type Product string

const (
	ProductBond Product = "BOND"
)

func (p Product) Wire() string { return "Product." + string(p) }

// Offset is the open/close flag. Cash bonds carry no position offset.
type Offset string

const (
	OffsetNone Offset = "NONE"
)

func (o Offset) Wire() string { return "Offset." + string(o) }

// OrderType is the venue order type.
type OrderType string

const (
	OrderTypeLimit OrderType = "LIMIT"
	OrderTypeFAK   OrderType = "FAK"
)

func (t OrderType) Wire() string { return "OrderType." + string(t) }

// Direction is the order side.
type Direction string

const (
	DirectionLong  Direction = "LONG"
	DirectionShort Direction = "SHORT"
)

func (d Direction) Wire() string { return "Direction." + string(d) }

// Status is the order/quote lifecycle state.
type Status string

const (
	StatusSubmitting Status = "SUBMITTING"
	StatusNotTraded  Status = "NOTTRADED"
	StatusPartTraded Status = "PARTTRADED"
	StatusAllTraded  Status = "ALLTRADED"
	StatusCancelled  Status = "CANCELLED"
	StatusRejected   Status = "REJECTED"
)

func (s Status) Wire() string { return "Status." + string(s) }

// IsActive reports whether the order/quote can still trade.
func (s Status) IsActive() bool {
	switch s {
	case StatusSubmitting, StatusNotTraded, StatusPartTraded:
		return true
	}
	return false
}
