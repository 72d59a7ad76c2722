package updater

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"time"
)

const (
	maxRetryAttempts = 3
	retryBaseDelay   = 250 * time.Millisecond
	retryMaxDelay    = 2 * time.Second
	retryJitterMax   = 200 * time.Millisecond
)

// backoff spaces out retries of a request. Both hooks are swapped in tests.
type backoff struct {
	jitter func(n int64) int64
	sleep  func(ctx context.Context, d time.Duration) error
}

// delay returns the wait before retry number attempt (1-based): doubling
// from retryBaseDelay, jittered, and capped at retryMaxDelay.
func (b backoff) delay(attempt int) time.Duration {
	d := retryBaseDelay
	for i := 1; i < attempt && d < retryMaxDelay; i++ {
		d *= 2
	}
	if b.jitter != nil {
		d += time.Duration(b.jitter(int64(retryJitterMax)))
	}
	return min(d, retryMaxDelay)
}

// do sends req up to maxRetryAttempts times. The last response is returned
// as is, even when its status is retryable. req must not carry a body.
func (b backoff) do(ctx context.Context, client *http.Client, req *http.Request) (*http.Response, error) {
	for attempt := 1; ; attempt++ {
		resp, err := client.Do(req)
		last := attempt == maxRetryAttempts

		switch {
		case err != nil:
			if last || !isRetryableRequestError(err) {
				return nil, err
			}
		case last || !isRetryableStatus(resp.StatusCode):
			return resp, nil
		default:
			_ = resp.Body.Close()
		}

		if err := b.sleep(ctx, b.delay(attempt)); err != nil {
			return nil, err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func isRetryableStatus(status int) bool {
	switch status {
	// GitHub answers 403 when the anonymous rate limit is hit.
	case http.StatusForbidden, http.StatusTooManyRequests, http.StatusRequestTimeout:
		return true
	}
	return status >= http.StatusInternalServerError
}

func isRetryableRequestError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && (dnsErr.IsTemporary || dnsErr.IsNotFound) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNRESET, syscall.ECONNREFUSED, syscall.EADDRNOTAVAIL,
			syscall.ENETUNREACH, syscall.EHOSTUNREACH:
			return true
		}
	}
	return false
}
