package service

import (
	"context"
	"fmt"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
	"github.com/Thereal-Vadim/Word-Game/internal/progress"
	"github.com/Thereal-Vadim/Word-Game/internal/repository"
	"github.com/Thereal-Vadim/Word-Game/internal/words"
)

type dictionaryService struct {
	words     *words.Database
	progress  *progress.Store
	settings  SettingsService
	difficult repository.DifficultWordRepo
}

func NewDictionaryService(db *words.Database, store *progress.Store, settings SettingsService, difficult repository.DifficultWordRepo) DictionaryService {
	return &dictionaryService{words: db, progress: store, settings: settings, difficult: difficult}
}

// Entries lists every word of levelID, or of all levels when levelID is
// empty, in database order.
func (s *dictionaryService) Entries(ctx context.Context, levelID string) ([]DictionaryEntry, error) {
	levels := s.words.Levels()
	if levelID != "" {
		if !s.words.HasLevel(levelID) {
			return nil, fmt.Errorf("unknown level %q", levelID)
		}
		levels = []string{levelID}
	}

	difficult, err := s.difficultSet(ctx)
	if err != nil {
		return nil, err
	}
	lang := s.settings.Get(ctx).Language
	rec := s.progress.Snapshot()

	var out []DictionaryEntry
	for _, id := range levels {
		for _, sub := range s.words.SubLevels(id) {
			for _, w := range sub.Words {
				out = append(out, s.entry(w, lang, rec, difficult))
			}
		}
	}
	return out, nil
}

func (s *dictionaryService) Difficult(ctx context.Context) ([]DictionaryEntry, error) {
	difficult, err := s.difficultSet(ctx)
	if err != nil {
		return nil, err
	}
	if len(difficult) == 0 {
		return nil, nil
	}
	lang := s.settings.Get(ctx).Language
	rec := s.progress.Snapshot()

	var out []DictionaryEntry
	for _, id := range s.words.Levels() {
		for _, sub := range s.words.SubLevels(id) {
			for _, w := range sub.Words {
				if difficult[w.Key()] {
					out = append(out, s.entry(w, lang, rec, difficult))
				}
			}
		}
	}
	return out, nil
}

func (s *dictionaryService) entry(w domain.WordEntry, lang domain.Language, rec *domain.ProgressRecord, difficult map[string]bool) DictionaryEntry {
	return DictionaryEntry{
		Key:        w.Key(),
		Word:       w.Word,
		LevelID:    w.LevelID,
		SubLevel:   w.SubLevel,
		Theme:      w.Theme,
		Definition: w.Definition(lang),
		Answer:     w.Answer(lang),
		Mastered:   rec.IsMastered(w.LevelID, w.SubLevel, w.Word),
		Difficult:  difficult[w.Key()],
	}
}

func (s *dictionaryService) difficultSet(ctx context.Context) (map[string]bool, error) {
	keys, err := s.difficult.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading difficult words: %w", err)
	}
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set, nil
}
