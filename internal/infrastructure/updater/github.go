// Package updater checks the release feed for newer versions.
package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
	"github.com/bnema/dumb-messenger/internal/domain/version"
	"github.com/bnema/dumb-messenger/internal/logging"
)

const (
	requestTimeout = 10 * time.Second
	maxReleaseBody = 1 << 20
	userAgent      = "dumb-messenger"
)

// release is the part of a GitHub "latest release" payload we read.
type release struct {
	TagName     string    `json:"tag_name"`
	HTMLURL     string    `json:"html_url"`
	PublishedAt time.Time `json:"published_at"`
	Body        string    `json:"body"`
}

// GitHubChecker reads a GitHub-style latest-release endpoint.
type GitHubChecker struct {
	feedURL string
	client  *http.Client
	backoff backoff
}

var _ port.UpdateChecker = (*GitHubChecker)(nil)

// NewGitHubChecker creates a checker for feedURL.
func NewGitHubChecker(feedURL string) *GitHubChecker {
	return &GitHubChecker{
		feedURL: feedURL,
		client:  &http.Client{Timeout: requestTimeout},
		backoff: backoff{jitter: rand.Int63n, sleep: sleepContext},
	}
}

// CheckForUpdate fetches the latest release. Failures worth retrying later
// wrap port.ErrUpdateCheckTransient.
func (g *GitHubChecker) CheckForUpdate(ctx context.Context, currentVersion string) (*entity.UpdateInfo, error) {
	rel, err := g.fetch(ctx, currentVersion)
	if err != nil {
		return nil, err
	}

	latest := version.Normalize(rel.TagName)
	info := &entity.UpdateInfo{
		CurrentVersion: currentVersion,
		LatestVersion:  latest,
		IsNewer:        version.IsNewer(currentVersion, latest),
		ReleaseURL:     rel.HTMLURL,
		PublishedAt:    rel.PublishedAt,
		ReleaseNotes:   rel.Body,
	}

	logging.FromContext(ctx).Debug().
		Str("current", currentVersion).
		Str("latest", latest).
		Bool("is_newer", info.IsNewer).
		Msg("release feed fetched")
	return info, nil
}

func (g *GitHubChecker) fetch(ctx context.Context, currentVersion string) (*release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.feedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent+"/"+currentVersion)

	resp, err := g.backoff.do(ctx, g.client, req)
	if err != nil {
		if isRetryableRequestError(err) {
			err = fmt.Errorf("%w: %w", port.ErrUpdateCheckTransient, err)
		}
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("release feed returned status %d", resp.StatusCode)
		if isRetryableStatus(resp.StatusCode) {
			err = fmt.Errorf("%w: %w", port.ErrUpdateCheckTransient, err)
		}
		return nil, err
	}

	var rel release
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxReleaseBody)).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	return &rel, nil
}
