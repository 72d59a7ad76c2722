package coordinator

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/application/usecase"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
	"github.com/bnema/dumb-messenger/internal/logging"
)

// DefaultUpdateInterval is the period between automatic update checks.
const DefaultUpdateInterval = 4 * time.Hour

const updateFlightKey = "update-check"

// UpdateChecker runs one update check.
type UpdateChecker interface {
	Execute(ctx context.Context, in usecase.CheckUpdateInput) (*usecase.CheckUpdateOutput, error)
}

// UpdateCoordinator handles automatic and manual update checks.
type UpdateCoordinator struct {
	checkUC   UpdateChecker
	opener    port.ExternalOpener
	presenter UpdatePresenter
	post      PostFunc
	enabled   func() bool
	interval  time.Duration

	flights singleflight.Group

	mu        sync.RWMutex
	status    entity.UpdateStatus
	lastInfo  *usecase.CheckUpdateOutput
	dismissed string
}

// UpdateCoordinatorDeps holds the collaborators of the update coordinator.
type UpdateCoordinatorDeps struct {
	CheckUC   UpdateChecker
	Opener    port.ExternalOpener
	Presenter UpdatePresenter
	Post      PostFunc
	// Enabled reports the auto-update preference at tick time.
	Enabled  func() bool
	Interval time.Duration
}

// NewUpdateCoordinator creates a new update coordinator.
func NewUpdateCoordinator(deps UpdateCoordinatorDeps) *UpdateCoordinator {
	interval := deps.Interval
	if interval <= 0 {
		interval = DefaultUpdateInterval
	}
	enabled := deps.Enabled
	if enabled == nil {
		enabled = func() bool { return true }
	}
	return &UpdateCoordinator{
		checkUC:   deps.CheckUC,
		opener:    deps.Opener,
		presenter: deps.Presenter,
		post:      deps.Post,
		enabled:   enabled,
		interval:  interval,
		status:    entity.UpdateStatusUnknown,
	}
}

// Start performs the startup check and then checks every interval until
// ctx is cancelled. Each tick consults the auto-update preference, so
// toggling it takes effect without a restart.
func (c *UpdateCoordinator) Start(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Dur("interval", c.interval).Msg("update coordinator started")

	go func() {
		if c.enabled() {
			c.Check(ctx, false)
		} else {
			log.Debug().Msg("update check on startup disabled")
		}

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if c.enabled() {
					c.Check(ctx, false)
				}
			}
		}
	}()
}

// CheckNow starts a manual check in the background. Its outcome is always
// reported, including "up to date" and failures.
func (c *UpdateCoordinator) CheckNow(ctx context.Context) {
	go c.Check(ctx, true)
}

// Check runs one check and reports its outcome. Overlapping checks share a
// single request.
func (c *UpdateCoordinator) Check(ctx context.Context, manual bool) {
	log := logging.FromContext(ctx)

	c.setStatus(entity.UpdateStatusChecking)

	v, err, shared := c.flights.Do(updateFlightKey, func() (any, error) {
		return c.checkUC.Execute(ctx, usecase.CheckUpdateInput{Manual: manual})
	})
	if shared {
		log.Debug().Bool("manual", manual).Msg("joined in-flight update check")
	}

	if err != nil {
		c.setStatus(entity.UpdateStatusFailed)
		if !manual {
			return
		}
		// A manual request that joined an automatic flight still reports.
		err = suppressedCause(err)
		c.post(func() { c.presenter.ShowUpdateError(ctx, err) })
		return
	}

	out, _ := v.(*usecase.CheckUpdateOutput)
	if out == nil {
		c.setStatus(entity.UpdateStatusFailed)
		return
	}

	c.mu.Lock()
	c.lastInfo = out
	dismissed := c.dismissed
	if out.UpdateAvailable {
		c.status = entity.UpdateStatusAvailable
	} else {
		c.status = entity.UpdateStatusUpToDate
	}
	c.mu.Unlock()

	switch {
	case out.UpdateAvailable && (manual || out.LatestVersion != dismissed):
		log.Info().
			Str("current", out.CurrentVersion).
			Str("latest", out.LatestVersion).
			Msg("update available")
		c.post(func() {
			c.presenter.ShowUpdateAvailable(ctx, out,
				func() { c.download(ctx, out) },
				func() { c.dismiss(out.LatestVersion) },
			)
		})
	case out.UpdateAvailable:
		log.Debug().Str("latest", out.LatestVersion).Msg("update already dismissed")
	case manual:
		c.post(func() { c.presenter.ShowUpToDate(ctx, out) })
	default:
		log.Debug().Str("version", out.CurrentVersion).Msg("already on latest version")
	}
}

// Status returns the outcome of the last check.
func (c *UpdateCoordinator) Status() entity.UpdateStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// LastInfo returns the result of the last successful check, or nil.
func (c *UpdateCoordinator) LastInfo() *usecase.CheckUpdateOutput {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastInfo
}

func (c *UpdateCoordinator) download(ctx context.Context, out *usecase.CheckUpdateOutput) {
	log := logging.FromContext(ctx)

	if out.ReleaseURL == "" {
		log.Warn().Str("latest", out.LatestVersion).Msg("release has no page to open")
		return
	}
	if err := c.opener.OpenURL(ctx, out.ReleaseURL); err != nil {
		log.Warn().Err(err).Str("url", out.ReleaseURL).Msg("failed to open release page")
	}
}

// dismiss silences automatic prompts for version until a newer one ships.
func (c *UpdateCoordinator) dismiss(version string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dismissed = version
}

func (c *UpdateCoordinator) setStatus(s entity.UpdateStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = s
}

// suppressedCause strips the suppression marker from an automatic check
// failure.
func suppressedCause(err error) error {
	if !errors.Is(err, usecase.ErrUpdateCheckSuppressed) {
		return err
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return err
	}
	for _, e := range joined.Unwrap() {
		if !errors.Is(e, usecase.ErrUpdateCheckSuppressed) {
			return e
		}
	}
	return err
}
