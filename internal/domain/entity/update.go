// Package entity holds the plain data types shared by the messenger shell's
// use cases and adapters.
package entity

import "time"

// UpdateInfo describes the newest release found on the release feed.
type UpdateInfo struct {
	CurrentVersion string
	LatestVersion  string
	// IsNewer is the checker's own comparison; use cases recompute it.
	IsNewer     bool
	ReleaseURL  string
	PublishedAt time.Time
	// ReleaseNotes is the release body, possibly empty.
	ReleaseNotes string
}

// UpdateStatus is the outcome of the most recent update check.
type UpdateStatus int

const (
	UpdateStatusUnknown UpdateStatus = iota
	UpdateStatusChecking
	UpdateStatusUpToDate
	UpdateStatusAvailable
	UpdateStatusFailed
)

var updateStatusNames = [...]string{
	UpdateStatusUnknown:   "unknown",
	UpdateStatusChecking:  "checking",
	UpdateStatusUpToDate:  "up-to-date",
	UpdateStatusAvailable: "available",
	UpdateStatusFailed:    "failed",
}

func (s UpdateStatus) String() string {
	if s < 0 || int(s) >= len(updateStatusNames) {
		return "unknown"
	}
	return updateStatusNames[s]
}
