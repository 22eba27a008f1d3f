package gateway

// Transport is the vendor API session collaborator. It owns connect/login,
// heartbeating, framing and request/response correlation; this layer only
// hands off payloads. Send methods return the vendor-assigned id, or ""
// when the transport could not accept the request.
//
// All calls are fire-and-forget: nothing here blocks on network I/O.
type Transport interface {
	Connect(username, password, key, address string)
	Close()

	// Anonymous (XBond) market.
	Subscribe(data Payload)
	SendOrder(data Payload) string
	CancelOrder(data Payload)

	// Bilateral (maker) market.
	MakerSubscribe(data Payload)
	MakerSendOrder(data Payload) string
	SendQuote(data Payload) string
	CancelQuote(data Payload)

	// Post-login state queries. Results arrive via Receiver callbacks.
	GetAllContracts()
	GetAllOrders()
	GetAllTrades()
	GetAllQuotes()
}

// Receiver is the inbound callback surface the gateway exposes to the
// transport. Callbacks may arrive on the transport's own goroutines,
// concurrently with each other and with outbound calls.
type Receiver interface {
	OnLogin(data Payload)
	OnDisconnected(reason string)
	OnAuth(status bool)

	OnTick(data Payload)
	OnQuote(data Payload)
	OnOrder(data Payload)
	OnTrade(data Payload)
	OnLog(data Payload)

	OnAllContracts(data []Payload)
	OnAllOrders(data []Payload)
	OnAllTrades(data []Payload)
	OnAllQuotes(data []Payload)
}
