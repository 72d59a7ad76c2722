package coordinator

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/application/usecase"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
	"github.com/bnema/dumb-messenger/internal/infrastructure/webkit/bridge"
	"github.com/bnema/dumb-messenger/internal/logging"
)

const badgeCoalesceKey = "badge"

// DefaultBadgePollInterval is how often the host re-reads the page title.
const DefaultBadgePollInterval = time.Second

// BadgeCoordinator feeds the badge publisher from every title producer and
// applies its updates to the window and the launcher.
type BadgeCoordinator struct {
	publisher *usecase.BadgePublisher
	view      BadgeView
	launcher  LauncherBadge
	window    WindowHandle
	post      func(key string, fn func())
	sched     port.Scheduler
	interval  time.Duration

	mu      sync.Mutex
	source  TitleSource
	poll    port.Timer
	stopped bool
}

// BadgeCoordinatorDeps holds the collaborators of the badge coordinator.
type BadgeCoordinatorDeps struct {
	Renderer port.BadgeRenderer
	View     BadgeView
	Launcher LauncherBadge
	Window   WindowHandle
	// Post schedules fn on the main loop, keeping only the latest fn per key.
	Post         func(key string, fn func())
	Scheduler    port.Scheduler
	PollInterval time.Duration
}

// NewBadgeCoordinator creates the coordinator. It is itself the badge
// surface of its publisher.
func NewBadgeCoordinator(deps BadgeCoordinatorDeps) *BadgeCoordinator {
	interval := deps.PollInterval
	if interval <= 0 {
		interval = DefaultBadgePollInterval
	}
	c := &BadgeCoordinator{
		view:     deps.View,
		launcher: deps.Launcher,
		window:   deps.Window,
		post:     deps.Post,
		sched:    deps.Scheduler,
		interval: interval,
	}
	c.publisher = usecase.NewBadgePublisher(deps.Renderer, c)
	return c
}

var _ port.BadgeSurface = (*BadgeCoordinator)(nil)

// Apply delivers update to the window on the main loop. Bursts collapse to
// the latest update; a destroyed window drops it.
func (c *BadgeCoordinator) Apply(ctx context.Context, update entity.BadgeUpdate) {
	log := logging.FromContext(ctx)

	c.post(badgeCoalesceKey, func() {
		if c.window != nil && c.window.IsDestroyed() {
			return
		}
		if c.view != nil {
			c.view.Apply(ctx, update)
		}
	})

	if c.launcher != nil {
		if err := c.launcher.SetCount(ctx, update.Count); err != nil {
			log.Debug().Err(err).Msg("failed to update launcher count")
		}
	}
}

// Observe forwards a title seen by source.
func (c *BadgeCoordinator) Observe(ctx context.Context, source usecase.BadgeSource, title string) {
	c.publisher.Observe(ctx, source, title)
}

// OnTitleChanged handles the web view's title signal.
func (c *BadgeCoordinator) OnTitleChanged(ctx context.Context, title string) {
	c.Observe(ctx, usecase.BadgeSourceTitleSignal, title)
}

// TitleMessageHandler returns the bridge handler for titles reported by the
// observer script.
func (c *BadgeCoordinator) TitleMessageHandler() bridge.Handler {
	return bridge.TitleHandler(func(ctx context.Context, p bridge.TitlePayload) {
		source := usecase.BadgeSource(p.Source)
		switch source {
		case usecase.BadgeSourcePageObserver, usecase.BadgeSourcePagePoll:
		default:
			source = usecase.BadgeSourcePageObserver
		}
		c.Observe(ctx, source, p.Title)
	})
}

// StartPolling re-reads the title from source every interval, covering
// pages where the observer script did not load.
func (c *BadgeCoordinator) StartPolling(ctx context.Context, source TitleSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped || c.poll != nil {
		return
	}
	c.source = source
	c.armLocked(ctx)
}

func (c *BadgeCoordinator) armLocked(ctx context.Context) {
	c.poll = c.sched.AfterFunc(c.interval, func() {
		c.mu.Lock()
		if c.stopped {
			c.mu.Unlock()
			return
		}
		src := c.source
		c.mu.Unlock()

		if src != nil {
			c.Observe(ctx, usecase.BadgeSourceHostPoll, src.Title())
		}

		c.mu.Lock()
		if !c.stopped {
			c.armLocked(ctx)
		}
		c.mu.Unlock()
	})
}

// Reset forgets the delivered count, e.g. after the page reloaded.
func (c *BadgeCoordinator) Reset() {
	c.publisher.Reset()
}

// Stop ends polling.
func (c *BadgeCoordinator) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	if c.poll != nil {
		c.poll.Stop()
		c.poll = nil
	}
}
