package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/domain/build"
	"github.com/bnema/dumb-messenger/internal/domain/version"
	"github.com/bnema/dumb-messenger/internal/logging"
)

// ErrUpdateCheckSuppressed wraps failures of automatic checks. Callers must
// not surface them to the user.
var ErrUpdateCheckSuppressed = errors.New("automatic update check failed")

// CheckUpdateInput holds the input for the check update use case.
type CheckUpdateInput struct {
	// Manual is true when the user asked for the check.
	Manual bool
}

// CheckUpdateOutput holds the result of the update check.
type CheckUpdateOutput struct {
	// UpdateAvailable is true if a newer version exists.
	UpdateAvailable bool
	// CurrentVersion is the version of the running binary.
	CurrentVersion string
	// LatestVersion is the latest available version.
	LatestVersion string
	// ReleaseURL is the URL to the release page.
	ReleaseURL string
	// ReleaseNotes is the changelog of the latest release.
	ReleaseNotes string
}

// CheckUpdateUseCase checks for available updates.
type CheckUpdateUseCase struct {
	checker   port.UpdateChecker
	buildInfo build.Info
}

// NewCheckUpdateUseCase creates a new check update use case.
func NewCheckUpdateUseCase(checker port.UpdateChecker, buildInfo build.Info) *CheckUpdateUseCase {
	return &CheckUpdateUseCase{
		checker:   checker,
		buildInfo: buildInfo,
	}
}

// Execute checks for available updates.
func (uc *CheckUpdateUseCase) Execute(ctx context.Context, in CheckUpdateInput) (*CheckUpdateOutput, error) {
	log := logging.FromContext(ctx)
	current := uc.buildInfo.Version

	info, err := uc.checker.CheckForUpdate(ctx, current)
	if err != nil {
		if !in.Manual {
			log.Debug().Err(err).
				Bool("transient", errors.Is(err, port.ErrUpdateCheckTransient)).
				Msg("automatic update check failed")
			return nil, fmt.Errorf("%w: %w", ErrUpdateCheckSuppressed, err)
		}
		log.Warn().Err(err).Msg("update check failed")
		return nil, err
	}
	if info == nil {
		return &CheckUpdateOutput{CurrentVersion: current, LatestVersion: current}, nil
	}

	// Malformed versions compare as zeros and never offer an update.
	available := !uc.buildInfo.IsDev() && version.IsNewer(current, info.LatestVersion)

	log.Debug().
		Str("current", current).
		Str("latest", info.LatestVersion).
		Bool("update_available", available).
		Bool("manual", in.Manual).
		Msg("update check completed")

	return &CheckUpdateOutput{
		UpdateAvailable: available,
		CurrentVersion:  current,
		LatestVersion:   info.LatestVersion,
		ReleaseURL:      info.ReleaseURL,
		ReleaseNotes:    info.ReleaseNotes,
	}, nil
}
