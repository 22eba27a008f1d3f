package codec

import (
	"log/slog"
	"strings"

	"comstar_go/internal/domain"
)

// registry holds every enumerated domain recognized on the wire. Read-only
// after init; never mutated at runtime.
var registry = map[string]map[string]bool{
	"Exchange": {
		string(domain.ExchangeXBOND): true,
		string(domain.ExchangeCFETS): true,
	},
	"Product": {
		string(domain.ProductBond): true,
	},
	"Offset": {
		string(domain.OffsetNone): true,
	},
	"OrderType": {
		string(domain.OrderTypeLimit): true,
		string(domain.OrderTypeFAK):   true,
	},
	"Direction": {
		string(domain.DirectionLong):  true,
		string(domain.DirectionShort): true,
	},
	"Status": {
		string(domain.StatusSubmitting): true,
		string(domain.StatusNotTraded):  true,
		string(domain.StatusPartTraded): true,
		string(domain.StatusAllTraded):  true,
		string(domain.StatusCancelled):  true,
		string(domain.StatusRejected):   true,
	},
}

// DecodeEnum decodes a wire string of the form "Category.Member". A string
// without a dot is an unset optional field and decodes to absent (ok=false)
// without logging. An unknown category or member is upstream payload drift:
// it is logged and dropped rather than propagated.
func DecodeEnum(s string) (category, member string, ok bool) {
	idx := strings.Index(s, ".")
	if idx < 0 {
		return "", "", false
	}

	category = s[:idx]
	member = s[idx+1:]

	members, known := registry[category]
	if !known {
		slog.Warn("enum decode: unknown category", "value", s)
		return "", "", false
	}
	if !members[member] {
		slog.Warn("enum decode: unknown member", "value", s)
		return "", "", false
	}
	return category, member, true
}

func decodeIn(s, wantCategory string) (string, bool) {
	category, member, ok := DecodeEnum(s)
	if !ok || category != wantCategory {
		return "", false
	}
	return member, true
}

// Typed decoders. A failed decode returns the zero value, which the parse
// layer treats as absent.

func DecodeExchange(s string) (domain.Exchange, bool) {
	m, ok := decodeIn(s, "Exchange")
	return domain.Exchange(m), ok
}

func DecodeProduct(s string) (domain.Product, bool) {
	m, ok := decodeIn(s, "Product")
	return domain.Product(m), ok
}

func DecodeOffset(s string) (domain.Offset, bool) {
	m, ok := decodeIn(s, "Offset")
	return domain.Offset(m), ok
}

func DecodeOrderType(s string) (domain.OrderType, bool) {
	m, ok := decodeIn(s, "OrderType")
	return domain.OrderType(m), ok
}

func DecodeDirection(s string) (domain.Direction, bool) {
	m, ok := decodeIn(s, "Direction")
	return domain.Direction(m), ok
}

func DecodeStatus(s string) (domain.Status, bool) {
	m, ok := decodeIn(s, "Status")
	return domain.Status(m), ok
}
