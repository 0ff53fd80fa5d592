package platform

import "sync"

// UnknownError is stored when SetLastError is given an empty message.
const UnknownError = "Unknown Error"

// errorCell holds the last error message. It is the one piece of OS state
// written from arbitrary goroutines.
type errorCell struct {
	mu  sync.Mutex
	msg string
}

func (c *errorCell) set(msg string) {
	if msg == "" {
		msg = UnknownError
	}
	c.mu.Lock()
	c.msg = msg
	c.mu.Unlock()
}

func (c *errorCell) get() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.msg
}

func (c *errorCell) clear() {
	c.mu.Lock()
	c.msg = ""
	c.mu.Unlock()
}

// SetLastError records msg as the last error.
func (o *OS) SetLastError(msg string) { o.lastError.set(msg) }

// LastError returns the last error, or "" if none is set.
func (o *OS) LastError() string { return o.lastError.get() }

// ClearLastError forgets the last error.
func (o *OS) ClearLastError() { o.lastError.clear() }
