package gateway

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// MockTransport is a scripted vendor session for tests and dry runs. It
// records every outbound call and can immediately confirm login.
type MockTransport struct {
	mu sync.Mutex

	receiver Receiver

	// AutoLogin makes Connect deliver a successful OnLogin synchronously.
	AutoLogin bool
	// FailSends makes every send return an empty vendor id.
	FailSends bool

	Connected     bool
	Closed        bool
	Subscriptions []Payload
	Orders        []Payload
	Cancels       []Payload
	Quotes        []Payload
	QuoteCancels  []Payload
	Queries       []string
}

var _ Transport = (*MockTransport)(nil)

func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// Bind attaches the gateway that will receive callbacks.
func (m *MockTransport) Bind(r Receiver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.receiver = r
}

func (m *MockTransport) Connect(username, password, key, address string) {
	m.mu.Lock()
	m.Connected = true
	r := m.receiver
	auto := m.AutoLogin
	m.mu.Unlock()

	slog.Info("MOCK TRANSPORT: connect", slog.String("address", address), slog.String("user", username))

	if auto && r != nil {
		r.OnLogin(Payload{"status": true})
	}
}

func (m *MockTransport) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
}

func (m *MockTransport) Subscribe(data Payload) {
	m.record(&m.Subscriptions, data)
}

func (m *MockTransport) MakerSubscribe(data Payload) {
	m.record(&m.Subscriptions, data)
}

func (m *MockTransport) SendOrder(data Payload) string {
	return m.send(&m.Orders, data)
}

func (m *MockTransport) MakerSendOrder(data Payload) string {
	return m.send(&m.Orders, data)
}

func (m *MockTransport) CancelOrder(data Payload) {
	m.record(&m.Cancels, data)
}

func (m *MockTransport) SendQuote(data Payload) string {
	return m.send(&m.Quotes, data)
}

func (m *MockTransport) CancelQuote(data Payload) {
	m.record(&m.QuoteCancels, data)
}

func (m *MockTransport) GetAllContracts() { m.query("contracts") }
func (m *MockTransport) GetAllOrders()    { m.query("orders") }
func (m *MockTransport) GetAllTrades()    { m.query("trades") }
func (m *MockTransport) GetAllQuotes()    { m.query("quotes") }

func (m *MockTransport) record(dst *[]Payload, data Payload) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*dst = append(*dst, data)
}

func (m *MockTransport) send(dst *[]Payload, data Payload) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSends {
		return ""
	}
	*dst = append(*dst, data)
	return uuid.NewString()
}

func (m *MockTransport) query(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Queries = append(m.Queries, name)
}
