package config

// Application settings.
const (
	AppName    = "datepick"
	DBFileName = "datepick.db"
	EnvPrefix  = "DATEPICK"
)

// Settings store keys.
const (
	SettingTheme = "theme"
)

// Locales for weekday and month labels.
const (
	LocaleEnglish = "en"
	LocaleChinese = "zh"
)

// Defaults applied when the config file omits a key.
const (
	DefaultTheme       = "default"
	DefaultLocale      = LocaleEnglish
	DefaultLogLevel    = "info"
	DefaultPlaceholder = "YYYY/MM/DD"
)
