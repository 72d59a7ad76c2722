// Package assets embeds the files shipped inside the binary.
package assets

import _ "embed"

// ObserverScript is injected into the page at document start. It reports
// title changes to the host and exposes window.__dumbMessenger.
//
//go:embed observer.js
var ObserverScript string

// LogoSVG is installed as the application icon.
//
//go:embed logo.svg
var LogoSVG []byte
