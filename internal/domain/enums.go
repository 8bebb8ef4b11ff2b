package domain

type Language string

const (
	LangEnglish Language = "en"
	LangRussian Language = "ru"
	LangGerman  Language = "de"
	LangFrench  Language = "fr"
)

// ValidLanguages is the canonical set of target languages a round can be played in.
var ValidLanguages = map[Language]bool{
	LangEnglish: true, LangRussian: true, LangGerman: true, LangFrench: true,
}

// LanguageNames maps each language to its menu label.
var LanguageNames = map[Language]string{
	LangEnglish: "English",
	LangRussian: "Русский",
	LangGerman:  "Deutsch",
	LangFrench:  "Français",
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Resolution is the state of the word currently presented in a round.
type Resolution string

const (
	WordPresented         Resolution = "presented"
	WordCorrect           Resolution = "correct"
	WordAttemptsExhausted Resolution = "attempts_exhausted"
	WordTimedOut          Resolution = "timed_out"
)

// IsResolved reports whether the word accepts only an advance.
func (r Resolution) IsResolved() bool {
	return r == WordCorrect || r == WordAttemptsExhausted || r == WordTimedOut
}

type RoundPhase string

const (
	RoundNotStarted RoundPhase = "not_started"
	RoundInProgress RoundPhase = "in_progress"
	RoundCompleted  RoundPhase = "completed"
)

// MaxStars is the best rating a sub-level can earn.
const MaxStars = 3
