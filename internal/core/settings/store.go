// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package settings

import (
	"context"
	"log/slog"
	"sync"

	"github.com/taibuivan/inkwell/internal/platform/apperr"
	"github.com/taibuivan/inkwell/internal/platform/validate"
)

// # Settings Store

// Listener receives every new settings value.
type Listener func(context context.Context, settings UserSettings)

type subscription struct {
	id       int
	listener Listener
}

/*
Store owns the current [UserSettings].

Every change replaces the whole value and then notifies subscribers in
subscription order. Notifications are serialised, so listeners observe
changes in the order they were committed. Listeners must not change settings
themselves.
*/
type Store struct {
	mu            sync.RWMutex
	current       UserSettings
	subscriptions []subscription
	nextID        int

	// notifyMu spans commit and notification so deliveries never interleave.
	notifyMu sync.Mutex

	logger *slog.Logger
}

// NewStore constructs a [Store] holding initial.
func NewStore(initial UserSettings, logger *slog.Logger) *Store {
	return &Store{current: initial, logger: logger}
}

// Get returns the current settings.
func (store *Store) Get() UserSettings {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.current
}

/*
Update replaces a single field.

Description: Enum-backed keys are parsed into their closed types. Colour keys
accept any string.

Parameters:
  - context: context.Context (forwarded to listeners)
  - key: Key
  - value: string

Returns:
  - UserSettings: The new settings
  - error: VALIDATION_ERROR for unknown keys or enum values
*/
func (store *Store) Update(context context.Context, key Key, value string) (UserSettings, error) {
	var patch Patch

	switch key {
	case KeyTheme:
		theme, err := ParseTheme(value)
		if err != nil {
			return store.Get(), err
		}
		patch.Theme = &theme
	case KeyFontSize:
		size, err := ParseFontSize(value)
		if err != nil {
			return store.Get(), err
		}
		patch.FontSize = &size
	case KeyFontFamily:
		family, err := ParseFontFamily(value)
		if err != nil {
			return store.Get(), err
		}
		patch.FontFamily = &family
	case KeyBackgroundColor:
		patch.BackgroundColor = &value
	case KeyTextColor:
		patch.TextColor = &value
	default:
		return store.Get(), validate.RequiredError("key", "Unknown setting "+string(key))
	}

	return store.Apply(context, patch)
}

/*
Apply commits a partial update in one step and sends one notification.

Returns:
  - UserSettings: The new settings (unchanged for an empty patch)
  - error: VALIDATION_ERROR if an enum field holds an unknown value
*/
func (store *Store) Apply(context context.Context, patch Patch) (UserSettings, error) {
	validator := &validate.Validator{}
	if patch.Theme != nil {
		validator.Custom(string(KeyTheme), !patch.Theme.IsValid(), "Unknown theme")
	}
	if patch.FontSize != nil {
		validator.Custom(string(KeyFontSize), !patch.FontSize.IsValid(), "Unknown font size")
	}
	if patch.FontFamily != nil {
		validator.Custom(string(KeyFontFamily), !patch.FontFamily.IsValid(), "Unknown font family")
	}
	if err := validator.Err(); err != nil {
		return store.Get(), err
	}

	if patch.IsEmpty() {
		return store.Get(), nil
	}

	return store.commit(context, patch), nil
}

/*
ApplyPreset sets the background colour, text colour and theme of a preset.

Parameters:
  - context: context.Context
  - name: string (display name or slug, case-insensitive)

Returns:
  - UserSettings: The new settings
  - error: apperr.NotFound("Preset") for unknown names
*/
func (store *Store) ApplyPreset(context context.Context, name string) (UserSettings, error) {
	preset, ok := FindPreset(name)
	if !ok {
		return store.Get(), apperr.NotFound("Preset")
	}

	next := store.commit(context, preset.patch())

	store.logger.Info("settings_preset_applied",
		slog.String("preset", preset.Slug),
		slog.String("theme", string(next.Theme)),
	)

	return next, nil
}

// Subscribe registers a listener and returns a function that removes it.
// The returned function is idempotent.
func (store *Store) Subscribe(listener Listener) (unsubscribe func()) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.nextID++
	id := store.nextID
	store.subscriptions = append(store.subscriptions, subscription{id: id, listener: listener})

	return func() {
		store.mu.Lock()
		defer store.mu.Unlock()

		for i, sub := range store.subscriptions {
			if sub.id == id {
				store.subscriptions = append(store.subscriptions[:i:i], store.subscriptions[i+1:]...)
				return
			}
		}
	}
}

// # Internal Helpers

// commit swaps in the patched value and notifies listeners outside the state lock.
func (store *Store) commit(context context.Context, patch Patch) UserSettings {
	store.notifyMu.Lock()
	defer store.notifyMu.Unlock()

	store.mu.Lock()
	next := patch.apply(store.current)
	store.current = next
	listeners := make([]Listener, len(store.subscriptions))
	for i, sub := range store.subscriptions {
		listeners[i] = sub.listener
	}
	store.mu.Unlock()

	store.logger.Debug("settings_updated",
		slog.String("theme", string(next.Theme)),
		slog.String("font_size", string(next.FontSize)),
		slog.String("font_family", string(next.FontFamily)),
	)

	for _, listener := range listeners {
		listener(context, next)
	}

	return next
}
