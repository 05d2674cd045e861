package clock

// TickSource supplies the two hardware counters the timing helpers need: a
// monotonic millisecond tick and a free-running count of microseconds within
// the current millisecond.
type TickSource interface {
	TickMs() uint32
	CycleCount() uint32
}

// Clock layers deadline and delay helpers over a TickSource. All arithmetic
// is unsigned 32-bit modular, so a deadline more than about 24.8 days away
// from now is indistinguishable from one the same distance in the past.
type Clock struct {
	src TickSource
}

func New(src TickSource) *Clock {
	return &Clock{src: src}
}

// DeadlineToTimeout returns how much time is left until the deadline is
// reached. If the deadline has already passed, the return value is 0 (except
// if the deadline is very far in the past).
func (c *Clock) DeadlineToTimeout(deadlineMs uint32) uint32 {
	timeoutMs := deadlineMs - c.src.TickMs()
	if timeoutMs&0x80000000 != 0 {
		return 0
	}
	return timeoutMs
}

// TimeoutToDeadline converts a timeout to a deadline based on the current
// time.
func (c *Clock) TimeoutToDeadline(timeoutMs uint32) uint32 {
	return c.src.TickMs() + timeoutMs
}

// IsInTheFuture reports whether the specified system time (in ms) is in the
// future. If the time lies far in the past this may falsely report true.
func (c *Clock) IsInTheFuture(timeMs uint32) bool {
	return c.DeadlineToTimeout(timeMs) != 0
}

// Micros returns the number of microseconds since system startup. The
// millisecond tick and the cycle count are separate counters; both reads are
// retried if the tick rolled over between them.
func (c *Clock) Micros() uint32 {
	var ms, cycleCnt uint32
	for {
		ms = c.src.TickMs()
		cycleCnt = c.src.CycleCount()
		if ms == c.src.TickMs() {
			break
		}
	}
	return ms*1000 + cycleCnt
}

// DelayMicros busy-waits for the given amount of microseconds.
func (c *Clock) DelayMicros(us uint32) {
	start := c.Micros()
	for c.Micros()-start < us {
	}
}
