//go:build rp2040 || rp2350

package clock

import (
	"runtime/volatile"
	"unsafe"
)

// RP2040/RP2350 timer peripheral: a 64-bit free-running counter at 1 MHz.
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x08
	timerTIMERAWL = timerBase + 0x0C
)

var (
	timerRAWH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

type hwTicks struct{}

// Hardware returns the tick source backed by the raw timer registers.
func Hardware() TickSource {
	return hwTicks{}
}

func (hwTicks) rawMicros() uint64 {
	// read high, low, high again; retry if the high word moved mid-read
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()
		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
	}
}

func (t hwTicks) TickMs() uint32 {
	return uint32(t.rawMicros() / 1000)
}

func (t hwTicks) CycleCount() uint32 {
	return uint32(t.rawMicros() % 1000)
}
