package domain

import (
	"fmt"
	"strings"
)

type WordEntry struct {
	Word         string
	LevelID      string
	SubLevel     int
	Theme        string
	Definitions  map[Language]string
	Translations map[Language]string
}

// Answer returns the expected translation for lang. English answers default
// to the word itself.
func (w WordEntry) Answer(lang Language) string {
	if t := w.Translations[lang]; t != "" {
		return t
	}
	if lang == LangEnglish || lang == "" {
		return w.Word
	}
	return ""
}

// Definition returns the definition in lang, falling back to English.
func (w WordEntry) Definition(lang Language) string {
	return coalesce(w.Definitions[lang], w.Definitions[LangEnglish])
}

// Key identifies the word inside the difficult-words document.
func (w WordEntry) Key() string {
	return WordKey(w.LevelID, w.SubLevel, w.Word)
}

// WordKey builds "<level>_<sub>_<canonical word>".
func WordKey(levelID string, subLevel int, word string) string {
	return fmt.Sprintf("%s_%d_%s", levelID, subLevel, NormalizeAnswer(word))
}

// NormalizeAnswer trims surrounding whitespace and case-folds s.
func NormalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func coalesce(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
