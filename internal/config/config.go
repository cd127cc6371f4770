package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	cerrors "cloudeng.io/errors"
	"github.com/akyairhashvil/datepick/internal/util"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config is the application configuration.
type Config struct {
	Picker  PickerConfig  `mapstructure:"picker"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`
	Storage StorageConfig `mapstructure:"storage"`
	Export  ExportConfig  `mapstructure:"export"`
}

// PickerConfig gates the footer actions and input presentation.
// Disabled renders the picker read-only.
type PickerConfig struct {
	Disabled    bool   `mapstructure:"disabled"`
	ShowToday   bool   `mapstructure:"show_today"`
	AllowClear  bool   `mapstructure:"allow_clear"`
	Placeholder string `mapstructure:"placeholder"`
	Locale      string `mapstructure:"locale"` // "en" or "zh"
}

type UIConfig struct {
	Theme string `mapstructure:"theme"`
	Mouse bool   `mapstructure:"mouse"`
}

type LogConfig struct {
	File  string `mapstructure:"file"` // empty disables logging
	Level string `mapstructure:"level"`
}

type StorageConfig struct {
	DBPath string `mapstructure:"db_path"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// Load reads configuration from configPath, or from datepick.yaml in the
// working directory or ~/.config/datepick when configPath is empty.
// A missing file leaves every key at its default; DATEPICK_* environment
// variables override file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join("$HOME", ".config", AppName))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("picker.disabled", false)
	v.SetDefault("picker.show_today", true)
	v.SetDefault("picker.allow_clear", true)
	v.SetDefault("picker.placeholder", DefaultPlaceholder)
	v.SetDefault("picker.locale", DefaultLocale)
	v.SetDefault("ui.theme", DefaultTheme)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("storage.db_path", filepath.Join(util.DataDir(AppName), DBFileName))
	v.SetDefault("export.dir", util.ReportsDir(AppName))
}

// Validate reports every invalid key at once.
func (c *Config) Validate() error {
	var errs cerrors.M

	switch c.Picker.Locale {
	case LocaleEnglish, LocaleChinese:
	default:
		errs.Append(fmt.Errorf("picker.locale must be %q or %q, got %q", LocaleEnglish, LocaleChinese, c.Picker.Locale))
	}

	if strings.TrimSpace(c.UI.Theme) == "" {
		errs.Append(fmt.Errorf("ui.theme is required"))
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		errs.Append(fmt.Errorf("log.level: %w", err))
	}

	if strings.TrimSpace(c.Storage.DBPath) == "" {
		errs.Append(fmt.Errorf("storage.db_path is required"))
	}

	if strings.TrimSpace(c.Export.Dir) == "" {
		errs.Append(fmt.Errorf("export.dir is required"))
	}

	return errs.Err()
}
