package port

import "context"

// ExternalOpener hands a URL to the system's default handler.
type ExternalOpener interface {
	OpenURL(ctx context.Context, url string) error
}
