// Package webkit wraps the WebKitGTK web view used to display the chat.
package webkit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/bnema/dumb-messenger/internal/logging"
)

// globalNetworkSession keeps the persistent session alive for the whole
// process. If it is collected WebKit falls back to ephemeral storage and
// the user is logged out on the next start.
var globalNetworkSession *webkit.NetworkSession

// InitPersistentSession creates the persistent network session. It must run
// before the first web view is created: the first session created becomes
// the default one.
func InitPersistentSession(ctx context.Context, dataDir, cacheDir string) error {
	log := logging.FromContext(ctx)

	if globalNetworkSession != nil {
		return nil
	}

	for _, dir := range []string{dataDir, cacheDir} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir %s: %w", dir, err)
		}
	}

	session := webkit.NewNetworkSession(dataDir, cacheDir)
	if session == nil {
		return fmt.Errorf("failed to create persistent network session")
	}
	globalNetworkSession = session

	if session.IsEphemeral() {
		return fmt.Errorf("created session is ephemeral despite providing data directories")
	}

	cookieManager := session.CookieManager()
	if cookieManager == nil {
		return fmt.Errorf("failed to get cookie manager from network session")
	}
	cookiePath := filepath.Join(dataDir, "cookies.sqlite")
	cookieManager.SetPersistentStorage(cookiePath, webkit.CookiePersistentStorageSqlite)
	// The login flow bounces between messenger.com and facebook.com.
	cookieManager.SetAcceptPolicy(webkit.CookiePolicyAcceptAlways)

	session.SetPersistentCredentialStorageEnabled(true)

	log.Info().
		Str("data", dataDir).
		Str("cache", cacheDir).
		Str("cookies", cookiePath).
		Msg("persistent network session ready")
	return nil
}

// NetworkSession returns the session created by InitPersistentSession.
func NetworkSession() *webkit.NetworkSession {
	return globalNetworkSession
}
