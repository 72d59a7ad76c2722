package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
	"github.com/bnema/dumb-messenger/internal/domain/title"
	"github.com/bnema/dumb-messenger/internal/logging"
)

const (
	// DefaultNotifyCooldown is the minimum interval between two notifications.
	DefaultNotifyCooldown = 1000 * time.Millisecond
	// DefaultIdleTitle is the page title when no conversation needs attention.
	DefaultIdleTitle = "Messenger"
	// NotificationIcon is the themed icon shown with notifications.
	NotificationIcon = "com.github.bnema.dumbmessenger"
)

// TitleNotifierConfig tunes the notification debouncer.
type TitleNotifierConfig struct {
	Cooldown  time.Duration
	IdleTitle string
	// Summary is the notification heading; the page title becomes the body.
	Summary string
}

// DebounceState is the state of the notification debouncer.
type DebounceState int

const (
	// DebounceIdle means no notification is pending.
	DebounceIdle DebounceState = iota
	// DebounceCoolingDown means a notification was just shown or a deferred
	// one is scheduled.
	DebounceCoolingDown
)

// TitleNotifier turns page title changes into desktop notifications.
//
// At most one notification is shown per distinct title and cooldown window,
// never while the window is focused. When several qualifying titles arrive
// inside one cooldown window only the latest one is shown, once the window
// expires.
type TitleNotifier struct {
	notifier  port.DesktopNotifier
	attention port.WindowAttention
	sched     port.Scheduler
	cfg       TitleNotifierConfig
	enabled   func() bool

	mu           sync.Mutex
	summary      string
	lastTitle    string
	lastShown    time.Time
	pending      port.Timer
	pendingTitle string
	generation   uint64
}

// NewTitleNotifier creates the debouncer. enabled is consulted on every
// event so that toggling notifications takes effect immediately; nil means
// always enabled.
func NewTitleNotifier(
	notifier port.DesktopNotifier,
	attention port.WindowAttention,
	sched port.Scheduler,
	cfg TitleNotifierConfig,
	enabled func() bool,
) *TitleNotifier {
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultNotifyCooldown
	}
	if cfg.IdleTitle == "" {
		cfg.IdleTitle = DefaultIdleTitle
	}
	if cfg.Summary == "" {
		cfg.Summary = DefaultIdleTitle
	}
	if enabled == nil {
		enabled = func() bool { return true }
	}
	return &TitleNotifier{
		notifier:  notifier,
		attention: attention,
		sched:     sched,
		cfg:       cfg,
		enabled:   enabled,
		summary:   cfg.Summary,
	}
}

// SetSummary replaces the notification heading, for example after the
// interface language changed. Empty keeps the current heading.
func (n *TitleNotifier) SetSummary(summary string) {
	if summary == "" {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.summary = summary
}

// State returns the current debouncer state.
func (n *TitleNotifier) State() DebounceState {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.pending != nil {
		return DebounceCoolingDown
	}
	if !n.lastShown.IsZero() && n.sched.Now().Sub(n.lastShown) < n.cfg.Cooldown {
		return DebounceCoolingDown
	}
	return DebounceIdle
}

// OnTitleChanged handles a new page title. focused is the window's input
// focus at the time of the change.
func (n *TitleNotifier) OnTitleChanged(ctx context.Context, newTitle string, focused bool) {
	log := logging.FromContext(ctx)

	if !n.enabled() {
		return
	}

	n.mu.Lock()
	if n.discardLocked(newTitle, focused) {
		n.mu.Unlock()
		return
	}

	now := n.sched.Now()
	elapsed := n.cfg.Cooldown
	if !n.lastShown.IsZero() {
		elapsed = now.Sub(n.lastShown)
	}

	n.cancelPendingLocked()

	if elapsed >= n.cfg.Cooldown {
		n.recordLocked(newTitle, now)
		n.mu.Unlock()
		n.show(ctx, newTitle)
		return
	}

	delay := n.cfg.Cooldown - elapsed
	n.generation++
	gen := n.generation
	n.pendingTitle = newTitle
	n.pending = n.sched.AfterFunc(delay, func() {
		n.firePending(ctx, gen)
	})
	n.mu.Unlock()

	log.Debug().Dur("delay", delay).Msg("notification deferred by cooldown")
}

// OnFocusGained resets the debouncer so the next qualifying title always
// notifies, and clears the attention indicator.
func (n *TitleNotifier) OnFocusGained(ctx context.Context) {
	n.mu.Lock()
	n.lastTitle = ""
	n.cancelPendingLocked()
	n.mu.Unlock()

	if n.attention != nil {
		n.attention.ClearAttention(ctx)
	}
}

// Close cancels any deferred notification.
func (n *TitleNotifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cancelPendingLocked()
}

func (n *TitleNotifier) discardLocked(t string, focused bool) bool {
	switch {
	case t == "":
		return true
	case focused:
		return true
	case title.HasUnreadPrefix(t):
		return true
	case t == n.cfg.IdleTitle:
		return true
	case t == n.lastTitle:
		return true
	}
	return false
}

func (n *TitleNotifier) firePending(ctx context.Context, gen uint64) {
	n.mu.Lock()
	if n.pending == nil || gen != n.generation {
		n.mu.Unlock()
		return
	}
	t := n.pendingTitle
	n.pending = nil
	n.pendingTitle = ""
	n.recordLocked(t, n.sched.Now())
	n.mu.Unlock()

	n.show(ctx, t)
}

func (n *TitleNotifier) recordLocked(t string, at time.Time) {
	n.lastTitle = t
	n.lastShown = at
}

func (n *TitleNotifier) cancelPendingLocked() {
	if n.pending != nil {
		n.pending.Stop()
		n.pending = nil
	}
	n.pendingTitle = ""
	n.generation++
}

func (n *TitleNotifier) show(ctx context.Context, body string) {
	log := logging.FromContext(ctx)

	n.mu.Lock()
	summary := n.summary
	n.mu.Unlock()

	notification := entity.Notification{
		Title: summary,
		Body:  body,
		Icon:  NotificationIcon,
	}

	var onActivate func()
	if n.attention != nil {
		onActivate = func() { n.attention.Present(ctx) }
	}

	if err := n.notifier.Show(ctx, notification, onActivate); err != nil {
		log.Warn().Err(err).Msg("failed to show notification")
	}
	if n.attention != nil {
		n.attention.RequestAttention(ctx)
	}
}
