package tui

import "context"

// SettingsStore persists picker preferences.
//
//go:generate mockgen -source=settings_store.go -destination=mock_settings_store_test.go -package=tui
type SettingsStore interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}
