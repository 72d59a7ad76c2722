// Package mainloop marshals work onto the GTK main loop.
package mainloop

import "sync"

// Coalescer merges bursts of same-key main-loop tasks. Only the latest
// callback posted for a key before the loop gets to it runs.
type Coalescer struct {
	post func(func())

	mu     sync.Mutex
	queued map[string]func() // a key is present while its task is scheduled
	closed bool
}

// NewCoalescer creates a coalescer that schedules through post. Use
// IdlePost in the application and a queue in tests.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer{post: post, queued: make(map[string]func())}
}

// Post schedules fn under key, replacing any callback for key that has not
// run yet. Safe to call from any goroutine.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	_, scheduled := c.queued[key]
	c.queued[key] = fn
	c.mu.Unlock()

	if !scheduled {
		c.post(func() { c.flush(key) })
	}
}

func (c *Coalescer) flush(key string) {
	c.mu.Lock()
	fn, ok := c.queued[key]
	delete(c.queued, key)
	closed := c.closed
	c.mu.Unlock()

	if ok && !closed {
		fn()
	}
}

// Destroy drops queued work. Later posts are ignored.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.closed = true
	c.queued = nil
	c.mu.Unlock()
}
