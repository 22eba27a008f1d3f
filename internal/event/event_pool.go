package event

import (
	"sync"
	"time"

	"comstar_go/internal/domain"
)

// Ticks are the only high-rate push, so only TickEvent is pooled.
var tickPool = sync.Pool{
	New: func() any { return &TickEvent{} },
}

// AcquireTickEvent returns a reset TickEvent from the pool.
func AcquireTickEvent() *TickEvent {
	return tickPool.Get().(*TickEvent)
}

// ReleaseTickEvent resets the event and returns it to the pool.
func ReleaseTickEvent(e *TickEvent) {
	e.Ts = time.Time{}
	e.Tick = domain.Tick{}
	tickPool.Put(e)
}

// Warmup pre-populates the pool to avoid allocation bursts at startup.
func Warmup() {
	const n = 64
	evs := make([]*TickEvent, 0, n)
	for i := 0; i < n; i++ {
		evs = append(evs, AcquireTickEvent())
	}
	for _, e := range evs {
		ReleaseTickEvent(e)
	}
}
