package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/akyairhashvil/datepick/internal/models"
	"go.uber.org/zap"
)

// GetSetting returns the stored value for key, or false when unset.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	var value sql.NullString
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			d.logger.Warn("setting lookup failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return value.String, value.Valid
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	_, err := d.DB.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	return wrapSettingErr("set", key, err)
}

func (d *Database) DeleteSetting(ctx context.Context, key string) error {
	res, err := d.DB.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
	if err != nil {
		return wrapSettingErr("delete", key, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return wrapSettingErr("delete", key, ErrNotFound)
	}
	return nil
}

// ListSettings returns every stored setting ordered by key.
func (d *Database) ListSettings(ctx context.Context) ([]models.Setting, error) {
	rows, err := d.DB.QueryContext(ctx, "SELECT key, value, updated_at FROM settings ORDER BY key")
	if err != nil {
		return nil, wrapSettingErr("list", "", err)
	}
	defer rows.Close()

	var out []models.Setting
	for rows.Next() {
		var s models.Setting
		var value sql.NullString
		if err := rows.Scan(&s.Key, &value, &s.UpdatedAt); err != nil {
			return nil, wrapSettingErr("scan", "", err)
		}
		s.Value = value.String
		out = append(out, s)
	}
	return out, wrapSettingErr("list", "", rows.Err())
}
