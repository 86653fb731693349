package conversation

import "sync/atomic"

// gate admits one turn at a time: idle -> in-flight -> idle.
// A caller that fails to acquire is turned away, never queued.
type gate struct {
	inFlight atomic.Bool
}

func (g *gate) acquire() bool {
	return g.inFlight.CompareAndSwap(false, true)
}

func (g *gate) release() {
	g.inFlight.Store(false)
}

func (g *gate) busy() bool {
	return g.inFlight.Load()
}
