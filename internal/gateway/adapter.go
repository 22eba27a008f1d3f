package gateway

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"comstar_go/internal/codec"
	"comstar_go/internal/domain"
	"comstar_go/internal/event"
	"comstar_go/internal/infra"
	"comstar_go/pkg/quant"
)

// MarketKind selects the venue-specific policy of a gateway instance.
type MarketKind uint8

const (
	// MarketXBond is the anonymous central-limit-order-book market.
	MarketXBond MarketKind = iota
	// MarketMaker is the bilateral request-for-quote market.
	MarketMaker
)

// policy is the capability table that differentiates the two market kinds.
// One orchestrator, parameterized; not two near-duplicate gateways.
type policy struct {
	orderTypes   map[domain.OrderType]bool
	orderTypeMsg string
	maker        bool
}

func (k MarketKind) policy() policy {
	if k == MarketMaker {
		return policy{
			orderTypes:   map[domain.OrderType]bool{domain.OrderTypeFAK: true},
			orderTypeMsg: "only FAK orders are supported on the maker market",
			maker:        true,
		}
	}
	return policy{
		orderTypes: map[domain.OrderType]bool{
			domain.OrderTypeLimit: true,
			domain.OrderTypeFAK:   true,
		},
		orderTypeMsg: "only limit and FAK orders are supported",
	}
}

func (k MarketKind) String() string {
	if k == MarketMaker {
		return "maker"
	}
	return "xbond"
}

// ConnState is the session state of one gateway instance.
type ConnState uint8

const (
	StateDisconnected ConnState = iota
	StateConnecting
	StateAuthenticated
	StateReady
)

func (s ConnState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateAuthenticated:
		return "authenticated"
	case StateReady:
		return "ready"
	default:
		return "disconnected"
	}
}

// Settings are the venue request parameters carried on maker quotes.
type Settings struct {
	RoutingType    string
	ValidUntilTime string
}

// Gateway adapts the ComStar vendor API to the canonical trading model.
// Inbound vendor pushes arrive via the Receiver methods (handlers.go),
// outbound host requests via the builder methods below. One mutex guards
// all mutable state; message rates are low enough that coarse locking is
// not a contention concern.
type Gateway struct {
	name     string
	kind     MarketKind
	api      Transport
	inbox    chan<- event.Event
	settings Settings

	mu    sync.Mutex
	state ConnState
	dedup *dedupFilter
	books map[string]*quoteBook
}

// NewGateway wires a gateway instance to its transport and host inbox.
func NewGateway(name string, kind MarketKind, api Transport, inbox chan<- event.Event, settings Settings) *Gateway {
	return &Gateway{
		name:     name,
		kind:     kind,
		api:      api,
		inbox:    inbox,
		settings: settings,
		state:    StateDisconnected,
		dedup:    newDedupFilter(),
		books:    make(map[string]*quoteBook),
	}
}

// Name returns the gateway instance name used in composite ids.
func (g *Gateway) Name() string { return g.name }

// State returns the current session state.
func (g *Gateway) State() ConnState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Gateway) setState(s ConnState) {
	g.mu.Lock()
	g.state = s
	g.mu.Unlock()
	slog.Debug("gateway state", "gateway", g.name, "state", s.String())
}

// Connect initiates the vendor session. Login outcome arrives via OnLogin;
// this layer performs no retry.
func (g *Gateway) Connect(username, password, key, address string) {
	g.setState(StateConnecting)
	g.api.Connect(username, password, key, address)
}

// Close shuts the vendor session down.
func (g *Gateway) Close() {
	g.api.Close()
}

// Reset drops all dedup and quote-book state, e.g. when the host cycles
// the venue session.
func (g *Gateway) Reset() {
	g.mu.Lock()
	g.dedup.reset()
	clear(g.books)
	g.mu.Unlock()
}

// Subscribe requests market data for one instrument.
func (g *Gateway) Subscribe(req *domain.SubscribeRequest) {
	code, settle, ok := codec.SplitSymbol(req.Symbol)
	if !ok {
		g.rejectSymbol(req.Symbol)
		return
	}

	data := Payload{
		"symbol":      code,
		"exchange":    req.Exchange.Wire(),
		"settle_type": settle,
		"vt_symbol":   req.VTSymbol(),
	}

	if g.kind.policy().maker {
		g.api.MakerSubscribe(data)
	} else {
		g.api.Subscribe(data)
	}
}

// SendOrder validates and submits a new order. Returns the composite
// "<gateway>.<orderid>" on success, "" on any rejection (reason logged).
func (g *Gateway) SendOrder(req *domain.OrderRequest) string {
	pol := g.kind.policy()

	if !pol.orderTypes[req.Type] {
		g.writeLog(pol.orderTypeMsg)
		infra.RequestsRejected.WithLabelValues(infra.RejectOrderType).Inc()
		return ""
	}

	code, settle, ok := codec.SplitSymbol(req.Symbol)
	if !ok {
		g.rejectSymbol(req.Symbol)
		return ""
	}

	volume := quant.ScaleVolume(req.Volume)

	data := Payload{
		"symbol":        code,
		"exchange":      req.Exchange.Wire(),
		"settle_type":   settle,
		"direction":     req.Direction.Wire(),
		"type":          req.Type.Wire(),
		"price":         req.Price,
		"volume":        volume,
		"strategy_name": req.Reference,
		"vt_symbol":     req.VTSymbol(),
	}

	var orderID string
	if pol.maker {
		// Maker fills are whole lots against a specific quoted level.
		if !quant.IsIntegralLots(volume) {
			g.writeLog(fmt.Sprintf("maker order volume %v is not a whole lot count", req.Volume))
			infra.RequestsRejected.WithLabelValues(infra.RejectFractionLots).Inc()
			return ""
		}

		level, found := g.lookupQuote(req.VTSymbol(), req.Direction, req.Price)
		if !found {
			g.writeLog(fmt.Sprintf("no quote level cached for %s at price %v", req.VTSymbol(), req.Price))
			infra.RequestsRejected.WithLabelValues(infra.RejectNoQuoteLevel).Inc()
			return ""
		}

		data["volume"] = int64(volume)
		data["quoteId"] = level.QuoteID
		data["partyID"] = level.PartyID
		data["transactTime"] = level.Time

		orderID = g.api.MakerSendOrder(data)
	} else {
		data["offset"] = domain.OffsetNone.Wire()
		orderID = g.api.SendOrder(data)
	}

	if orderID == "" {
		return ""
	}

	// Push the SUBMITTING snapshot so host UI reacts before the venue
	// confirms.
	order := req.CreateOrder(orderID, g.name)
	g.post(event.OrderEvent{BaseEvent: event.BaseEvent{Ts: time.Now()}, Order: order})

	return g.name + "." + orderID
}

// CancelOrder requests cancellation of a working order.
func (g *Gateway) CancelOrder(req *domain.CancelRequest) {
	code, settle, ok := codec.SplitSymbol(req.Symbol)
	if !ok {
		g.rejectSymbol(req.Symbol)
		return
	}

	g.api.CancelOrder(Payload{
		"symbol":      code,
		"exchange":    req.Exchange.Wire(),
		"settle_type": settle,
		"orderid":     req.OrderID,
		"vt_symbol":   req.VTSymbol(),
	})
}

// SendQuote submits a two-sided maker quote. Returns the composite
// "<gateway>.<quoteid>" on success, "" on rejection.
func (g *Gateway) SendQuote(req *domain.QuoteRequest) string {
	if !g.kind.policy().maker {
		g.writeLog("quoting is only supported on the maker market")
		infra.RequestsRejected.WithLabelValues(infra.RejectOrderType).Inc()
		return ""
	}

	code, settle, ok := codec.SplitSymbol(req.Symbol)
	if !ok {
		g.rejectSymbol(req.Symbol)
		return ""
	}

	data := Payload{
		"symbol":          code,
		"exchange":        req.Exchange.Wire(),
		"bid_settle_type": settle,
		"bid_price":       req.BidPrice,
		"bid_volume":      quant.ScaleVolume(req.BidVolume),
		"ask_price":       req.AskPrice,
		"ask_volume":      quant.ScaleVolume(req.AskVolume),
		"ask_settle_type": settle,
		"quoteTransType":  "N",
		"validUntilTime":  g.settings.ValidUntilTime,
		"routingType":     g.settings.RoutingType,
		"strategy_name":   req.Reference,
		"vt_symbol":       req.VTSymbol(),
	}

	quoteID := g.api.SendQuote(data)
	if quoteID == "" {
		return ""
	}

	quote := req.CreateQuote(quoteID, g.name)
	g.post(event.QuoteEvent{BaseEvent: event.BaseEvent{Ts: time.Now()}, Quote: quote})

	return g.name + "." + quoteID
}

// CancelQuote requests cancellation of a working quote.
func (g *Gateway) CancelQuote(req *domain.CancelRequest) {
	code, settle, ok := codec.SplitSymbol(req.Symbol)
	if !ok {
		g.rejectSymbol(req.Symbol)
		return
	}

	g.api.CancelQuote(Payload{
		"symbol":      code,
		"exchange":    req.Exchange.Wire(),
		"settle_type": settle,
		"orderid":     req.OrderID,
		"routingType": g.settings.RoutingType,
		"vt_symbol":   req.VTSymbol(),
	})
}

// queryAll runs the fixed post-login query sequence.
func (g *Gateway) queryAll() {
	g.api.GetAllContracts()
	g.api.GetAllOrders()
	g.api.GetAllTrades()
	if g.kind.policy().maker {
		g.api.GetAllQuotes()
	}
}

func (g *Gateway) lookupQuote(vtSymbol string, direction domain.Direction, price float64) (quoteLevel, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	book, ok := g.books[vtSymbol]
	if !ok {
		return quoteLevel{}, false
	}
	return book.lookup(direction, price)
}

func (g *Gateway) updateQuoteBook(vtSymbol string, flat Payload) {
	g.mu.Lock()
	defer g.mu.Unlock()
	book, ok := g.books[vtSymbol]
	if !ok {
		book = newQuoteBook()
		g.books[vtSymbol] = book
	}
	book.update(flat)
}

func (g *Gateway) rejectSymbol(symbol string) {
	g.writeLog(fmt.Sprintf("symbol %q must carry settlement speed T0 or T1", symbol))
	infra.RequestsRejected.WithLabelValues(infra.RejectBadSymbol).Inc()
}

// writeLog logs locally and surfaces the line to the host UI.
func (g *Gateway) writeLog(msg string) {
	slog.Info(msg, "gateway", g.name)
	g.post(event.LogEvent{
		BaseEvent: event.BaseEvent{Ts: time.Now()},
		Log: domain.LogEntry{
			Msg:         msg,
			Time:        time.Now(),
			GatewayName: g.name,
		},
	})
}

// post delivers a low-rate event to the host. These must not be lost, so
// delivery blocks if the inbox is full.
func (g *Gateway) post(ev event.Event) {
	g.inbox <- ev
}

// postTick delivers a tick. Ticks are high-rate and superseded by the next
// snapshot, so a full inbox drops rather than blocks the transport thread.
func (g *Gateway) postTick(tick *domain.Tick) {
	ev := event.AcquireTickEvent()
	ev.Ts = time.Now()
	ev.Tick = *tick

	select {
	case g.inbox <- ev:
	default:
		event.ReleaseTickEvent(ev)
	}
}
