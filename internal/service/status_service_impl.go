package service

import (
	"context"
	"fmt"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
	"github.com/Thereal-Vadim/Word-Game/internal/progress"
	"github.com/Thereal-Vadim/Word-Game/internal/repository"
	"github.com/Thereal-Vadim/Word-Game/internal/words"
)

type statusService struct {
	words     *words.Database
	progress  *progress.Store
	difficult repository.DifficultWordRepo
	history   repository.HistoryRepo
}

func NewStatusService(db *words.Database, store *progress.Store, difficult repository.DifficultWordRepo, history repository.HistoryRepo) StatusService {
	return &statusService{words: db, progress: store, difficult: difficult, history: history}
}

func (s *statusService) Status(ctx context.Context, recent int) (*StatusView, error) {
	rec := s.progress.Snapshot()
	view := &StatusView{
		CumulativeScore: rec.CumulativeScore,
		CurrentLevelID:  rec.CurrentLevelID,
	}

	for _, id := range s.words.Levels() {
		for _, sub := range s.words.SubLevels(id) {
			view.SubLevelsTotal++
			view.MaxStars += domain.MaxStars
			view.WordsTotal += len(sub.Words)
			view.WordsMastered += rec.MasteredCount(id, sub.ID)
			if stars, ok := rec.Stars(id, sub.ID); ok {
				view.SubLevelsDone++
				view.TotalStars += stars
			}
		}
	}

	keys, err := s.difficult.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading difficult words: %w", err)
	}
	view.DifficultCount = len(keys)

	view.Recent, err = s.history.ListRecent(ctx, recent)
	if err != nil {
		return nil, fmt.Errorf("loading round history: %w", err)
	}
	return view, nil
}
