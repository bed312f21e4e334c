package config

import "strings"

// Settings keys for Fyne preferences
const (
	KeyLanguage = "app_language"
)

// Settings manages UI settings kept beside the preference state. Today that
// is the language picked in the language menu.
type Settings struct {
	storage  Storage
	fallback string
}

// NewSettings creates a settings manager. fallback is the language used until
// the user picks one, usually Env.Language.
func NewSettings(storage Storage, fallback string) *Settings {
	if fallback == "" {
		fallback = DefaultLanguage
	}
	return &Settings{storage: storage, fallback: fallback}
}

// GetLanguage returns the chosen language, or the fallback when none is stored
func (s *Settings) GetLanguage() string {
	lang := strings.TrimSpace(s.storage.String(KeyLanguage))
	if lang == "" {
		return s.fallback
	}
	return lang
}

// SetLanguage stores the application language. An empty value forgets the
// choice so the fallback applies again.
func (s *Settings) SetLanguage(lang string) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		s.storage.RemoveValue(KeyLanguage)
		return
	}
	s.storage.SetString(KeyLanguage, lang)
}
