package event

import (
	"time"

	"comstar_go/internal/domain"
)

// Type defines the type of event.
type Type uint16

const (
	EvTick Type = iota + 1
	EvOrder
	EvTrade
	EvQuote
	EvContract
	EvLog
)

// Event is the interface for all host-bound events.
type Event interface {
	GetTs() time.Time
	GetType() Type
}

// BaseEvent contains common fields for all events.
type BaseEvent struct {
	Ts time.Time `json:"ts"`
}

func (e BaseEvent) GetTs() time.Time { return e.Ts }

// TickEvent carries a normalized market snapshot. Pooled; release after use.
type TickEvent struct {
	BaseEvent
	Tick domain.Tick `json:"tick"`
}

func (e *TickEvent) GetType() Type { return EvTick }

// OrderEvent carries an order state change.
type OrderEvent struct {
	BaseEvent
	Order domain.Order `json:"order"`
}

func (e OrderEvent) GetType() Type { return EvOrder }

// TradeEvent carries a single fill.
type TradeEvent struct {
	BaseEvent
	Trade domain.Trade `json:"trade"`
}

func (e TradeEvent) GetType() Type { return EvTrade }

// QuoteEvent carries a maker quote state change.
type QuoteEvent struct {
	BaseEvent
	Quote domain.Quote `json:"quote"`
}

func (e QuoteEvent) GetType() Type { return EvQuote }

// ContractEvent carries static instrument attributes.
type ContractEvent struct {
	BaseEvent
	Contract domain.Contract `json:"contract"`
}

func (e ContractEvent) GetType() Type { return EvContract }

// LogEvent carries a gateway log line for the host UI.
type LogEvent struct {
	BaseEvent
	Log domain.LogEntry `json:"log"`
}

func (e LogEvent) GetType() Type { return EvLog }
