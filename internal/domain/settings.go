package domain

import "fmt"

// Settings is the learner-editable settings document.
type Settings struct {
	TimerDuration int      `json:"timerDuration"`
	Language      Language `json:"language"`
	SoundEnabled  bool     `json:"soundEnabled"`
	Theme         Theme    `json:"theme"`
}

// DefaultSettings returns the settings used on first run.
func DefaultSettings() Settings {
	return Settings{
		TimerDuration: 30,
		Language:      LangEnglish,
		SoundEnabled:  true,
		Theme:         ThemeDark,
	}
}

// Validate rejects settings that cannot drive a round.
func (s Settings) Validate() error {
	if s.TimerDuration <= 0 {
		return fmt.Errorf("timer duration must be positive, got %d", s.TimerDuration)
	}
	if !ValidLanguages[s.Language] {
		return fmt.Errorf("unsupported language %q", s.Language)
	}
	if s.Theme != ThemeLight && s.Theme != ThemeDark {
		return fmt.Errorf("theme must be %q or %q, got %q", ThemeLight, ThemeDark, s.Theme)
	}
	return nil
}

// WithDefaults fills zero fields from DefaultSettings. Used when a stored
// document predates a field. SoundEnabled cannot be told apart from an
// absent key here, so decoders fill it by unmarshalling over DefaultSettings.
func (s Settings) WithDefaults() Settings {
	d := DefaultSettings()
	if s.TimerDuration <= 0 {
		s.TimerDuration = d.TimerDuration
	}
	if s.Language == "" {
		s.Language = d.Language
	}
	if s.Theme == "" {
		s.Theme = d.Theme
	}
	return s
}
