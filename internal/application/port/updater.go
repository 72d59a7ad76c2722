// Package port defines interfaces for external dependencies.
package port

import (
	"context"
	"errors"

	"github.com/bnema/dumb-messenger/internal/domain/entity"
)

// ErrUpdateCheckTransient marks failures that are expected to go away on
// their own (rate limits, timeouts, connection resets).
var ErrUpdateCheckTransient = errors.New("transient update check failure")

// UpdateChecker checks for available updates from a remote source.
type UpdateChecker interface {
	// CheckForUpdate compares the current version with the latest available release.
	// Returns update info including whether a newer version is available.
	CheckForUpdate(ctx context.Context, currentVersion string) (*entity.UpdateInfo, error)
}
