package port

import "context"

// PageCommander sends commands from the native side into the loaded page.
type PageCommander interface {
	// SelectAll selects the contents of the element that was last
	// right-clicked in the page.
	SelectAll(ctx context.Context)
	Reload(ctx context.Context)
}
