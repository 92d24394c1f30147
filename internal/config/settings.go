package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/yt-browser/internal/model"
	"github.com/ytget/yt-browser/internal/platform"
	"github.com/ytget/yt-browser/internal/proxy"
	"github.com/ytget/yt-browser/internal/viewcache"
)

// Theme variants
type ThemeVariant string

const (
	ThemeSystem ThemeVariant = "system"
	ThemeLight  ThemeVariant = "light"
	ThemeDark   ThemeVariant = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyMaxAliveViews        = "max_alive_views"
	KeyProxyMode            = "proxy_mode"
	KeyProxyCustomURL       = "proxy_custom_url"
	KeyProxyFallback        = "proxy_fallback_to_system"
	KeyThemeVariant         = "theme_variant"
	KeyLanguage             = "app_language"
	KeyDownloadDir          = "download_directory"
	KeyLogSessionsKeep      = "log_sessions_keep"
	KeyNotificationPosition = "notification_position"
)

// Default values
const (
	DefaultProxyMode     = proxy.ModeNone
	DefaultProxyFallback = true
	DefaultThemeVariant  = ThemeSystem
	DefaultLanguage      = "system"

	DefaultLogSessionsKeep = 5
	MaxLogSessionsKeep     = 50

	MaxAliveViewsLimit = 20
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetMaxAliveViews returns how many views the browser keeps mounted
func (s *Settings) GetMaxAliveViews() int {
	value := s.app.Preferences().Int(KeyMaxAliveViews)
	if value <= 0 {
		s.SetMaxAliveViews(viewcache.DefaultMaxAlive)
		return viewcache.DefaultMaxAlive
	}
	if value > MaxAliveViewsLimit {
		return MaxAliveViewsLimit
	}
	return value
}

// SetMaxAliveViews sets how many views the browser keeps mounted
func (s *Settings) SetMaxAliveViews(count int) {
	if count < viewcache.MinMaxAlive {
		count = viewcache.MinMaxAlive
	}
	if count > MaxAliveViewsLimit {
		count = MaxAliveViewsLimit
	}
	s.app.Preferences().SetInt(KeyMaxAliveViews, count)
}

// GetProxyConfig returns the full proxy configuration
func (s *Settings) GetProxyConfig() proxy.Config {
	return proxy.Config{
		Mode:      s.GetProxyMode(),
		CustomURL: s.GetProxyCustomURL(),
		Fallback:  s.GetProxyFallback(),
	}
}

// GetProxyMode returns the configured proxy mode
func (s *Settings) GetProxyMode() string {
	mode := s.app.Preferences().String(KeyProxyMode)
	if mode == "" {
		s.SetProxyMode(DefaultProxyMode)
		return DefaultProxyMode
	}
	return mode
}

// SetProxyMode sets the proxy mode
func (s *Settings) SetProxyMode(mode string) {
	s.app.Preferences().SetString(KeyProxyMode, mode)
}

// GetProxyCustomURL returns the custom proxy URL
func (s *Settings) GetProxyCustomURL() string {
	return s.app.Preferences().String(KeyProxyCustomURL)
}

// SetProxyCustomURL sets the custom proxy URL
func (s *Settings) SetProxyCustomURL(url string) {
	s.app.Preferences().SetString(KeyProxyCustomURL, url)
}

// GetProxyFallback returns whether to fall back to the system proxy
func (s *Settings) GetProxyFallback() bool {
	return s.app.Preferences().BoolWithFallback(KeyProxyFallback, DefaultProxyFallback)
}

// SetProxyFallback sets whether to fall back to the system proxy
func (s *Settings) SetProxyFallback(fallback bool) {
	s.app.Preferences().SetBool(KeyProxyFallback, fallback)
}

// GetThemeVariant returns the configured theme variant
func (s *Settings) GetThemeVariant() ThemeVariant {
	variant := s.app.Preferences().String(KeyThemeVariant)
	if variant == "" {
		s.SetThemeVariant(DefaultThemeVariant)
		return DefaultThemeVariant
	}
	return ThemeVariant(variant)
}

// SetThemeVariant sets the theme variant
func (s *Settings) SetThemeVariant(variant ThemeVariant) {
	s.app.Preferences().SetString(KeyThemeVariant, string(variant))
}

// GetThemeVariantOptions returns available theme options
func (s *Settings) GetThemeVariantOptions() []ThemeVariant {
	return []ThemeVariant{ThemeSystem, ThemeLight, ThemeDark}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() []string {
	return []string{"system", "en", "ru", "pt"}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetLogSessionsKeep returns how many session log files to retain
func (s *Settings) GetLogSessionsKeep() int {
	value := s.app.Preferences().Int(KeyLogSessionsKeep)
	if value <= 0 {
		s.SetLogSessionsKeep(DefaultLogSessionsKeep)
		return DefaultLogSessionsKeep
	}
	if value > MaxLogSessionsKeep {
		return MaxLogSessionsKeep
	}
	return value
}

// SetLogSessionsKeep sets how many session log files to retain
func (s *Settings) SetLogSessionsKeep(keep int) {
	if keep < 1 {
		keep = 1
	}
	if keep > MaxLogSessionsKeep {
		keep = MaxLogSessionsKeep
	}
	s.app.Preferences().SetInt(KeyLogSessionsKeep, keep)
}

// GetNotificationPosition returns the configured toast position
func (s *Settings) GetNotificationPosition() model.NotificationPosition {
	pos := model.NotificationPosition(s.app.Preferences().String(KeyNotificationPosition))
	if !model.ValidPosition(pos) {
		s.SetNotificationPosition(model.DefaultNotificationPosition)
		return model.DefaultNotificationPosition
	}
	return pos
}

// SetNotificationPosition sets the toast position
func (s *Settings) SetNotificationPosition(pos model.NotificationPosition) {
	if !model.ValidPosition(pos) {
		pos = model.DefaultNotificationPosition
	}
	s.app.Preferences().SetString(KeyNotificationPosition, string(pos))
}

// GetNotificationPositionOptions returns the selectable toast positions
func (s *Settings) GetNotificationPositionOptions() []model.NotificationPosition {
	return []model.NotificationPosition{
		model.PositionTopLeft, model.PositionTopCenter, model.PositionTopRight,
		model.PositionBottomLeft, model.PositionBottomCenter, model.PositionBottomRight,
	}
}
