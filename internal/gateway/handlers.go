package gateway

import (
	"time"

	"comstar_go/internal/codec"
	"comstar_go/internal/domain"
	"comstar_go/internal/event"
	"comstar_go/internal/infra"
	"comstar_go/pkg/quant"
	"comstar_go/pkg/safe"
)

// Inbound vendor callbacks. Each may arrive on a transport goroutine,
// concurrently with every other callback and with outbound builders.

var _ Receiver = (*Gateway)(nil)

// OnTick normalizes a market data push. The two payload shapes are told
// apart structurally: quote ticks carry the nested per-level map.
func (g *Gateway) OnTick(data Payload) {
	var tick *domain.Tick

	if data.Has("qdmEspMarketDataLevelMap") {
		flat := convertQuoteTick(data)
		tick = parseQuoteTick(flat)

		// The book must be current before any maker order can resolve
		// against it.
		g.updateQuoteBook(tick.VTSymbol(), flat)

		synthesizeLastPrice(tick)
		infra.TicksNormalized.WithLabelValues("maker").Inc()
	} else {
		tick = parseDepthTick(data)
		infra.TicksNormalized.WithLabelValues("xbond").Inc()
	}

	descaleTick(tick)
	tick.GatewayName = g.name
	tick.LocalTime = time.Now()

	g.postTick(tick)
}

// OnQuote surfaces a maker quote state change.
func (g *Gateway) OnQuote(data Payload) {
	quote := parseQuote(data)

	// The venue echoes a SUBMITTING state; the host already has the local
	// snapshot, so it is filtered at the boundary.
	if quote.Status == domain.StatusSubmitting {
		return
	}

	quote.BidVolume = quant.DescaleVolume(quote.BidVolume)
	quote.AskVolume = quant.DescaleVolume(quote.AskVolume)
	quote.GatewayName = g.name

	g.post(event.QuoteEvent{BaseEvent: event.BaseEvent{Ts: time.Now()}, Quote: quote})
}

// OnOrder surfaces an order state change, suppressing reconnect repeats.
func (g *Gateway) OnOrder(data Payload) {
	order := parseOrder(data)

	if order.Status == domain.StatusSubmitting {
		return
	}

	order.Volume = quant.DescaleVolume(order.Volume)
	order.Traded = quant.DescaleVolume(order.Traded)
	order.GatewayName = g.name

	g.mu.Lock()
	dup := g.dedup.duplicateOrder(order.VTOrderID(), order.Traded, order.Status)
	g.mu.Unlock()
	if dup {
		infra.DuplicatesSuppressed.WithLabelValues("order").Inc()
		return
	}

	g.post(event.OrderEvent{BaseEvent: event.BaseEvent{Ts: time.Now()}, Order: order})
}

// OnTrade surfaces a fill exactly once per trade id.
func (g *Gateway) OnTrade(data Payload) {
	trade := parseTrade(data)

	trade.Volume = quant.DescaleVolume(trade.Volume)
	trade.GatewayName = g.name

	g.mu.Lock()
	dup := g.dedup.duplicateTrade(trade.VTTradeID())
	g.mu.Unlock()
	if dup {
		infra.DuplicatesSuppressed.WithLabelValues("trade").Inc()
		return
	}

	g.post(event.TradeEvent{BaseEvent: event.BaseEvent{Ts: time.Now()}, Trade: trade})
}

// OnLog forwards a vendor log line to the host.
func (g *Gateway) OnLog(data Payload) {
	entry := parseLog(data)
	entry.GatewayName = g.name

	g.post(event.LogEvent{BaseEvent: event.BaseEvent{Ts: time.Now()}, Log: entry})
}

// OnLogin handles the login outcome. Success triggers the fixed query
// sequence; failure returns to disconnected with no retry from this layer.
func (g *Gateway) OnLogin(data Payload) {
	if !data.Bool("status") {
		g.setState(StateDisconnected)
		g.writeLog("server login failed")
		return
	}

	g.setState(StateAuthenticated)
	g.queryAll()
	g.setState(StateReady)
	g.writeLog("server login succeeded")
}

// OnDisconnected surfaces the disconnect reason. Reconnect policy belongs
// to the transport collaborator.
func (g *Gateway) OnDisconnected(reason string) {
	g.setState(StateDisconnected)
	g.writeLog(reason)
}

// OnAuth surfaces the authorization outcome.
func (g *Gateway) OnAuth(status bool) {
	if status {
		g.writeLog("server authorization succeeded")
	} else {
		g.writeLog("server authorization failed")
	}
}

// OnAllContracts materializes each vendor instrument once per settlement
// speed and exchange it trades on.
func (g *Gateway) OnAllContracts(data []Payload) {
	settles := []string{codec.SettleT0, codec.SettleT1}
	exchanges := []domain.Exchange{domain.ExchangeXBOND, domain.ExchangeCFETS}

	for _, d := range data {
		for _, settle := range settles {
			for _, ex := range exchanges {
				contract := parseContract(d, settle)
				contract.Size = safe.Mul(contract.Size, quant.LotSize)
				contract.MinVolume = quant.DescaleVolume(contract.MinVolume)
				contract.Exchange = ex
				contract.GatewayName = g.name

				g.post(event.ContractEvent{
					BaseEvent: event.BaseEvent{Ts: time.Now()},
					Contract:  contract,
				})
			}
		}
	}

	g.writeLog("contract query completed")
}

// OnAllOrders replays the venue's order book through the normal order
// path; the dedup filter absorbs anything already surfaced.
func (g *Gateway) OnAllOrders(data []Payload) {
	for _, d := range data {
		g.OnOrder(d)
	}
	g.writeLog("order query completed")
}

// OnAllTrades replays historical fills through the normal trade path.
func (g *Gateway) OnAllTrades(data []Payload) {
	for _, d := range data {
		g.OnTrade(d)
	}
	g.writeLog("trade query completed")
}

// OnAllQuotes replays working maker quotes.
func (g *Gateway) OnAllQuotes(data []Payload) {
	for _, d := range data {
		g.OnQuote(d)
	}
	g.writeLog("quote query completed")
}
