package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage            = "app_language"
	KeyWorkerCount         = "worker_count"
	KeyDownloadDurationSec = "download_duration_seconds"
)

// Default values
const (
	DefaultLanguage            = "system"
	DefaultWorkerCount         = 2
	DefaultDownloadDurationSec = 5
)

// Settings manages user-facing preferences persisted by the GUI toolkit.
// Preferences take effect on the next launch; live tuning goes through
// environment configuration instead.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
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

// GetWorkerCount returns the number of background workers
func (s *Settings) GetWorkerCount() int {
	value := s.app.Preferences().Int(KeyWorkerCount)
	if value <= 0 {
		s.SetWorkerCount(DefaultWorkerCount)
		return DefaultWorkerCount
	}
	return value
}

// SetWorkerCount sets the number of background workers
func (s *Settings) SetWorkerCount(count int) {
	if count < 1 {
		count = 1
	}
	if count > 10 {
		count = 10
	}
	s.app.Preferences().SetInt(KeyWorkerCount, count)
}

// GetDownloadDuration returns the simulated download duration
func (s *Settings) GetDownloadDuration() time.Duration {
	seconds := s.app.Preferences().Int(KeyDownloadDurationSec)
	if seconds <= 0 {
		s.SetDownloadDuration(DefaultDownloadDurationSec * time.Second)
		return DefaultDownloadDurationSec * time.Second
	}
	return time.Duration(seconds) * time.Second
}

// SetDownloadDuration sets the simulated download duration, rounded
// down to whole seconds with a one second floor
func (s *Settings) SetDownloadDuration(d time.Duration) {
	seconds := int(d / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	s.app.Preferences().SetInt(KeyDownloadDurationSec, seconds)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}
