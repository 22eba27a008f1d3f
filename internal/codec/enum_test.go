package codec

import (
	"testing"

	"comstar_go/internal/domain"
)

func TestDecodeEnumRoundTrip(t *testing.T) {
	// Every registered value must survive encode -> decode.
	wires := []string{
		domain.ExchangeXBOND.Wire(),
		domain.ExchangeCFETS.Wire(),
		domain.ProductBond.Wire(),
		domain.OffsetNone.Wire(),
		domain.OrderTypeLimit.Wire(),
		domain.OrderTypeFAK.Wire(),
		domain.DirectionLong.Wire(),
		domain.DirectionShort.Wire(),
		domain.StatusSubmitting.Wire(),
		domain.StatusNotTraded.Wire(),
		domain.StatusPartTraded.Wire(),
		domain.StatusAllTraded.Wire(),
		domain.StatusCancelled.Wire(),
		domain.StatusRejected.Wire(),
	}

	for _, wire := range wires {
		category, member, ok := DecodeEnum(wire)
		if !ok {
			t.Errorf("DecodeEnum(%q) failed", wire)
			continue
		}
		if got := category + "." + member; got != wire {
			t.Errorf("DecodeEnum(%q) = %q", wire, got)
		}
	}
}

func TestDecodeEnumAbsent(t *testing.T) {
	tests := []string{
		"",            // unset optional field
		"NoDot",       // no separator
		"Bogus.LONG",  // unknown category
		"Direction.X", // unknown member
	}

	for _, s := range tests {
		if _, _, ok := DecodeEnum(s); ok {
			t.Errorf("DecodeEnum(%q) ok = true; want absent", s)
		}
	}
}

func TestTypedDecoders(t *testing.T) {
	if ex, ok := DecodeExchange("Exchange.XBOND"); !ok || ex != domain.ExchangeXBOND {
		t.Errorf("DecodeExchange = (%q, %v)", ex, ok)
	}
	if st, ok := DecodeStatus("Status.PARTTRADED"); !ok || st != domain.StatusPartTraded {
		t.Errorf("DecodeStatus = (%q, %v)", st, ok)
	}
	if d, ok := DecodeDirection("Direction.SHORT"); !ok || d != domain.DirectionShort {
		t.Errorf("DecodeDirection = (%q, %v)", d, ok)
	}
	// Category mismatch must not leak across types.
	if _, ok := DecodeDirection("Status.REJECTED"); ok {
		t.Error("DecodeDirection accepted a Status value")
	}
}

func FuzzDecodeEnum(f *testing.F) {
	f.Add("Exchange.XBOND")
	f.Add("Status.ALLTRADED")
	f.Add("...")
	f.Add("")

	f.Fuzz(func(t *testing.T, s string) {
		category, member, ok := DecodeEnum(s)
		if ok && category+"."+member != s {
			t.Errorf("decoded parts do not reassemble %q", s)
		}
	})
}
