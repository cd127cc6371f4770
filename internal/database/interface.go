package database

import (
	"context"

	"github.com/akyairhashvil/datepick/internal/models"
)

// SettingsRepository defines preference storage operations.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
	ListSettings(ctx context.Context) ([]models.Setting, error)
}

var _ SettingsRepository = (*Database)(nil)
