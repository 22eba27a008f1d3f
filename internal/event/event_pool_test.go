package event

import (
	"testing"
)

func TestTickEventPool(t *testing.T) {
	// Acquire and use
	ev := AcquireTickEvent()
	ev.Tick.Symbol = "204001_T1"
	ev.Tick.LastPrice = 2.55

	if ev.Tick.Symbol != "204001_T1" {
		t.Error("Symbol not set")
	}

	// Release
	ReleaseTickEvent(ev)

	// Acquire again - should be reset
	ev2 := AcquireTickEvent()
	if ev2.Tick.Symbol != "" {
		t.Error("Event should be reset after release")
	}
	ReleaseTickEvent(ev2)
}

func TestWarmup(t *testing.T) {
	Warmup() // must not panic, pool stays usable

	ev := AcquireTickEvent()
	if ev.Tick.Symbol != "" {
		t.Error("Warmed-up event should be zeroed")
	}
	ReleaseTickEvent(ev)
}

// BenchmarkWithoutPool measures allocation without pool
func BenchmarkWithoutPool(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ev := &TickEvent{}
		ev.Tick.Symbol = "204001_T1"
		_ = ev
	}
}

// BenchmarkWithPool measures allocation with pool
func BenchmarkWithPool(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ev := AcquireTickEvent()
		ev.Tick.Symbol = "204001_T1"
		ReleaseTickEvent(ev)
	}
}
