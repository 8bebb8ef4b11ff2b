package testutil

import (
	"fmt"
	"time"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
	"github.com/google/uuid"
)

// WordOption customizes a WordEntry built by NewTestWord.
type WordOption func(*domain.WordEntry)

func WithTranslation(lang domain.Language, text string) WordOption {
	return func(w *domain.WordEntry) {
		if w.Translations == nil {
			w.Translations = make(map[domain.Language]string)
		}
		w.Translations[lang] = text
	}
}

func WithDefinition(lang domain.Language, text string) WordOption {
	return func(w *domain.WordEntry) {
		w.Definitions[lang] = text
	}
}

func WithTheme(theme string) WordOption {
	return func(w *domain.WordEntry) { w.Theme = theme }
}

// NewTestWord builds a word with an English definition derived from the word.
func NewTestWord(level string, sub int, word string, opts ...WordOption) domain.WordEntry {
	w := domain.WordEntry{
		Word:        word,
		LevelID:     level,
		SubLevel:    sub,
		Theme:       "Test",
		Definitions: map[domain.Language]string{domain.LangEnglish: "definition of " + word},
	}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// NewTestWords builds n words named word1..wordN.
func NewTestWords(level string, sub, n int) []domain.WordEntry {
	out := make([]domain.WordEntry, n)
	for i := range out {
		out[i] = NewTestWord(level, sub, fmt.Sprintf("word%d", i+1))
	}
	return out
}

// HistoryOption customizes a RoundResult built by NewTestRoundResult.
type HistoryOption func(*domain.RoundResult)

func WithFinishedAt(t time.Time) HistoryOption {
	return func(r *domain.RoundResult) { r.FinishedAt = t }
}

func WithStars(stars int) HistoryOption {
	return func(r *domain.RoundResult) { r.Stars = stars }
}

func NewTestRoundResult(level string, sub int, opts ...HistoryOption) *domain.RoundResult {
	r := &domain.RoundResult{
		ID:           uuid.New().String(),
		LevelID:      level,
		SubLevel:     sub,
		Stars:        2,
		Score:        30,
		CorrectCount: 4,
		TotalWords:   5,
		FinishedAt:   time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewTestProgress returns a record where the given sub-levels of level are
// completed with the given stars, in order starting at sub-level 1.
func NewTestProgress(level string, stars ...int) *domain.ProgressRecord {
	p := domain.NewProgressRecord()
	for i, s := range stars {
		p.Apply(domain.Completion{LevelID: level, SubLevel: i + 1, Stars: s})
	}
	return p
}
