// Package ui provides the GTK4 presentation layer of dumb-messenger.
package ui

import (
	"context"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/application/usecase"
	"github.com/bnema/dumb-messenger/internal/domain/build"
	"github.com/bnema/dumb-messenger/internal/infrastructure/config"
	"github.com/bnema/dumb-messenger/internal/ui/coordinator"
	"github.com/bnema/dumb-messenger/internal/ui/theme"
)

// Dependencies holds all injected dependencies for the UI layer.
// This struct is created once at startup and passed to UI components.
type Dependencies struct {
	// Core context and configuration
	Ctx           context.Context
	Config        *config.Config
	ConfigManager *config.Manager
	BuildInfo     build.Info
	// InitialURL overrides app.url (optional).
	InitialURL string

	// Theme management
	Theme *theme.Manager

	// WebKit infrastructure
	UserScript      string
	WebKitDataDir   string
	WebKitCacheDir  string
	DeveloperExtras bool

	// Use Cases
	PrefsUC       *usecase.ManagePreferencesUseCase
	GeometryUC    *usecase.WindowGeometryUseCase
	ContainUC     *usecase.ContainNavigationUseCase
	CheckUpdateUC *usecase.CheckUpdateUseCase

	// Infrastructure Adapters
	Notifier      port.DesktopNotifier
	Launcher      coordinator.LauncherBadge
	BadgeRenderer port.BadgeRenderer
	Opener        port.ExternalOpener
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	required := []struct {
		name string
		ok   bool
	}{
		{"Ctx", d.Ctx != nil},
		{"Config", d.Config != nil},
		{"PrefsUC", d.PrefsUC != nil},
		{"GeometryUC", d.GeometryUC != nil},
		{"ContainUC", d.ContainUC != nil},
		{"CheckUpdateUC", d.CheckUpdateUC != nil},
		{"Notifier", d.Notifier != nil},
		{"BadgeRenderer", d.BadgeRenderer != nil},
		{"Opener", d.Opener != nil},
	}
	for _, r := range required {
		if !r.ok {
			return ErrMissingDependency(r.name)
		}
	}
	// Launcher, theme and the config manager are optional.
	return nil
}

// StartURL returns the page loaded at startup.
func (d *Dependencies) StartURL() string {
	if d.InitialURL != "" {
		return d.InitialURL
	}
	if d.Config != nil && d.Config.App.URL != "" {
		return d.Config.App.URL
	}
	return config.DefaultAppURL
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
