package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"comstar_go/internal/event"
	"comstar_go/internal/gateway"
	"comstar_go/internal/infra"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	// 1. Configuration and logging
	cfg, err := infra.LoadConfig(*configPath)
	if err != nil {
		slog.Error("❌ Configuration failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.SetDefault(infra.NewLogger(cfg))

	// 2. Runtime warmup
	event.Warmup()
	slog.Info("🔥 Event pool warmed up")

	// 3. Metrics endpoint
	if cfg.Metrics.Addr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			slog.Info("📊 Metrics server started", "addr", cfg.Metrics.Addr)
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				slog.Error("Metrics server failed", slog.Any("error", err))
			}
		}()
	}

	// 4. Gateway wiring. The mock transport stands in for the vendor
	// session library; swap in the real Transport implementation here.
	inbox := make(chan event.Event, cfg.Gateway.InboxSize)
	settings := gateway.Settings{
		RoutingType:    cfg.Trading.RoutingType,
		ValidUntilTime: cfg.Trading.ValidUntilTime,
	}

	xbondAPI := gateway.NewMockTransport()
	xbondAPI.AutoLogin = true
	xbond := gateway.NewGateway(cfg.Gateway.Name, gateway.MarketXBond, xbondAPI, inbox, settings)
	xbondAPI.Bind(xbond)

	makerAPI := gateway.NewMockTransport()
	makerAPI.AutoLogin = true
	maker := gateway.NewGateway(cfg.Gateway.Name+"-QUOTE", gateway.MarketMaker, makerAPI, inbox, settings)
	makerAPI.Bind(maker)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Host event consumer
	go consume(ctx, inbox)

	// 6. Connect both markets
	xbond.Connect(cfg.Server.Username, cfg.Server.Password, cfg.Server.Key, cfg.Server.Address)
	maker.Connect(cfg.Server.Username, cfg.Server.Password, cfg.Server.Key, cfg.Server.Address)
	slog.Info("✅ Gateways connected", "xbond", xbond.State().String(), "maker", maker.State().String())

	<-ctx.Done()

	xbond.Close()
	maker.Close()
	slog.Info("👋 Shutdown complete")
}

// consume drains host-bound events. A real host platform would route
// these into its event bus; here they are logged.
func consume(ctx context.Context, inbox <-chan event.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-inbox:
			switch e := ev.(type) {
			case *event.TickEvent:
				slog.Debug("tick",
					"symbol", e.Tick.VTSymbol(),
					"last", e.Tick.LastPrice,
					"bid", e.Tick.BidPrice[0],
					"ask", e.Tick.AskPrice[0])
				event.ReleaseTickEvent(e)
			case event.OrderEvent:
				slog.Info("order",
					"id", e.Order.VTOrderID(),
					"status", string(e.Order.Status),
					"traded", e.Order.Traded)
			case event.TradeEvent:
				slog.Info("trade",
					"id", e.Trade.VTTradeID(),
					"price", e.Trade.Price,
					"volume", e.Trade.Volume)
			case event.QuoteEvent:
				slog.Info("quote",
					"id", e.Quote.VTQuoteID(),
					"status", string(e.Quote.Status))
			case event.ContractEvent:
				slog.Debug("contract", "symbol", e.Contract.VTSymbol())
			case event.LogEvent:
				slog.Info(e.Log.Msg, "gateway", e.Log.GatewayName)
			}
		}
	}
}
