//go:build !rp2040 && !rp2350

package clock

import "time"

type hostTicks struct {
	start time.Time
}

// Hardware returns a tick source over the process monotonic clock, for
// running the firmware logic off-target.
func Hardware() TickSource {
	return &hostTicks{start: time.Now()}
}

func (t *hostTicks) TickMs() uint32 {
	return uint32(time.Since(t.start) / time.Millisecond)
}

func (t *hostTicks) CycleCount() uint32 {
	return uint32(time.Since(t.start)/time.Microsecond) % 1000
}
