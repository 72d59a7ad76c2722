package usecase

import (
	"context"
	"sync"

	"github.com/bnema/dumb-messenger/internal/application/port"
	"github.com/bnema/dumb-messenger/internal/domain/entity"
	"github.com/bnema/dumb-messenger/internal/logging"
)

// ManagePreferencesUseCase owns the session preferences. Every change goes
// through Update, which persists and then notifies subscribers.
type ManagePreferencesUseCase struct {
	store port.PreferencesStore

	mu          sync.RWMutex
	current     entity.Preferences
	subscribers []func(entity.Preferences)
}

// NewManagePreferencesUseCase loads the stored preferences. Read failures are
// logged and the defaults are used.
func NewManagePreferencesUseCase(ctx context.Context, store port.PreferencesStore) *ManagePreferencesUseCase {
	log := logging.FromContext(ctx)

	prefs, err := store.LoadPreferences(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load preferences, using defaults")
		prefs = entity.DefaultPreferences()
	}
	if prefs.Language == "" {
		prefs.Language = entity.LanguageAuto
	}

	return &ManagePreferencesUseCase{
		store:   store,
		current: prefs,
	}
}

// Current returns a copy of the current preferences.
func (uc *ManagePreferencesUseCase) Current() entity.Preferences {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current
}

// Subscribe registers fn to be called after every effective change.
func (uc *ManagePreferencesUseCase) Subscribe(fn func(entity.Preferences)) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.subscribers = append(uc.subscribers, fn)
}

// Update applies mutate to a copy of the preferences, persists the result
// and notifies subscribers. A failed write is logged; the new value stays in
// effect for the session.
func (uc *ManagePreferencesUseCase) Update(ctx context.Context, mutate func(*entity.Preferences)) entity.Preferences {
	log := logging.FromContext(ctx)

	next, changed := uc.swap(mutate)
	if !changed {
		return next
	}

	if err := uc.store.SavePreferences(ctx, next); err != nil {
		log.Error().Err(err).Msg("failed to save preferences")
	}

	log.Debug().
		Str("language", next.Language).
		Bool("auto_update_check", next.AutoUpdateCheck).
		Bool("notifications", next.Notifications).
		Msg("preferences updated")

	uc.notify(next)
	return next
}

// Replace adopts preferences that were changed outside the application
// (config file edited by hand). It notifies subscribers but does not write.
func (uc *ManagePreferencesUseCase) Replace(p entity.Preferences) {
	next, changed := uc.swap(func(cur *entity.Preferences) { *cur = p })
	if changed {
		uc.notify(next)
	}
}

func (uc *ManagePreferencesUseCase) swap(mutate func(*entity.Preferences)) (entity.Preferences, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := uc.current
	mutate(&next)
	if next.Language == "" {
		next.Language = entity.LanguageAuto
	}
	if next == uc.current {
		return next, false
	}
	uc.current = next
	return next, true
}

func (uc *ManagePreferencesUseCase) notify(p entity.Preferences) {
	uc.mu.RLock()
	subs := make([]func(entity.Preferences), len(uc.subscribers))
	copy(subs, uc.subscribers)
	uc.mu.RUnlock()

	for _, fn := range subs {
		fn(p)
	}
}
