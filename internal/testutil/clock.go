package testutil

import "sync"

// ManualClock is a microsecond tick source that only moves when told to.
//
// FakeBackend reads TicksUsec from it and advances it on DelayUsec, so
// frame timing in tests is exact.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type ManualClock struct {
	mu   sync.Mutex
	usec uint64
}

// NewManualClock creates a clock reading start microseconds.
func NewManualClock(start uint64) *ManualClock {
	return &ManualClock{usec: start}
}

// Now returns the current reading.
func (c *ManualClock) Now() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.usec
}

// Advance moves the clock forward and returns the new reading.
func (c *ManualClock) Advance(usec uint64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.usec += usec
	return c.usec
}

// Set jumps to an absolute reading. Used to place the clock at awkward
// values such as 1999 µs.
func (c *ManualClock) Set(usec uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.usec = usec
}
