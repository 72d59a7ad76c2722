package mainloop

import (
	"sync/atomic"
	"time"

	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"

	"github.com/bnema/dumb-messenger/internal/application/port"
)

// IdlePost runs fn once on the GTK main loop.
func IdlePost(fn func()) {
	coreglib.IdleAdd(func() bool {
		fn()
		return false
	})
}

// Scheduler runs delayed callbacks on the GTK main loop.
type Scheduler struct {
	timeoutAdd   func(ms uint, fn func() bool) coreglib.SourceHandle
	sourceRemove func(coreglib.SourceHandle)
	now          func() time.Time
}

var _ port.Scheduler = (*Scheduler)(nil)

// NewScheduler creates a scheduler backed by GLib timeout sources.
func NewScheduler() *Scheduler {
	return &Scheduler{
		timeoutAdd: func(ms uint, fn func() bool) coreglib.SourceHandle {
			return coreglib.TimeoutAdd(ms, fn)
		},
		sourceRemove: func(h coreglib.SourceHandle) {
			coreglib.SourceRemove(h)
		},
		now: time.Now,
	}
}

// Now returns the wall clock time.
func (s *Scheduler) Now() time.Time {
	return s.now()
}

// AfterFunc runs fn on the main loop once d has elapsed.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) port.Timer {
	if d < 0 {
		d = 0
	}
	t := &timer{remove: s.sourceRemove}
	t.handle = s.timeoutAdd(uint(d.Milliseconds()), func() bool {
		if t.done.CompareAndSwap(false, true) {
			fn()
		}
		return false
	})
	return t
}

type timer struct {
	handle coreglib.SourceHandle
	remove func(coreglib.SourceHandle)
	done   atomic.Bool
}

// Stop removes the source unless it already fired. Removing a source that
// GLib already dropped logs a critical warning, hence the flag.
func (t *timer) Stop() bool {
	if !t.done.CompareAndSwap(false, true) {
		return false
	}
	t.remove(t.handle)
	return true
}
