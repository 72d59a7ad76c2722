package port

import "time"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// Timer is a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the callback was still
	// pending.
	Stop() bool
}

// Scheduler runs callbacks after a delay on the owner's event loop.
type Scheduler interface {
	Clock
	AfterFunc(d time.Duration, fn func()) Timer
}
