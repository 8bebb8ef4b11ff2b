package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Thereal-Vadim/Word-Game/internal/config"
	"github.com/Thereal-Vadim/Word-Game/internal/domain"
	"github.com/Thereal-Vadim/Word-Game/internal/progress"
	"github.com/Thereal-Vadim/Word-Game/internal/repository"
	"github.com/Thereal-Vadim/Word-Game/internal/round"
	"github.com/Thereal-Vadim/Word-Game/internal/words"
	"github.com/rs/zerolog"
)

type gameService struct {
	words     *words.Database
	progress  *progress.Store
	settings  SettingsService
	difficult repository.DifficultWordRepo
	history   repository.HistoryRepo
	cfg       config.Config
	log       zerolog.Logger
	observer  UseCaseObserver
	now       func() time.Time
}

func NewGameService(
	db *words.Database,
	store *progress.Store,
	settings SettingsService,
	difficult repository.DifficultWordRepo,
	history repository.HistoryRepo,
	cfg config.Config,
	log zerolog.Logger,
	observers ...UseCaseObserver,
) GameService {
	return &gameService{
		words:     db,
		progress:  store,
		settings:  settings,
		difficult: difficult,
		history:   history,
		cfg:       cfg,
		log:       log.With().Str("component", "game").Logger(),
		observer:  useCaseObserverOrNoop(observers),
		now:       time.Now,
	}
}

func (s *gameService) Levels(_ context.Context) []LevelView {
	rec := s.progress.Snapshot()
	levels := s.words.Levels()
	out := make([]LevelView, 0, len(levels))
	for _, id := range levels {
		subs := s.words.SubLevels(id)
		lv := LevelView{ID: id, MaxStars: len(subs) * domain.MaxStars}
		for _, sub := range subs {
			stars, done := rec.Stars(id, sub.ID)
			lv.SubLevels = append(lv.SubLevels, SubLevelView{
				LevelID:   id,
				SubLevel:  sub.ID,
				Theme:     sub.Theme,
				Words:     len(sub.Words),
				Mastered:  rec.MasteredCount(id, sub.ID),
				Stars:     stars,
				Completed: done,
				Unlocked:  rec.IsUnlocked(id, sub.ID),
			})
			lv.TotalStars += stars
		}
		out = append(out, lv)
	}
	return out
}

func (s *gameService) NextPlayable(ctx context.Context) (string, int, bool) {
	levels := s.Levels(ctx)
	for _, lv := range levels {
		for _, sub := range lv.SubLevels {
			if sub.Unlocked && !sub.Completed {
				return sub.LevelID, sub.SubLevel, true
			}
		}
	}
	for _, lv := range levels {
		for _, sub := range lv.SubLevels {
			if sub.Unlocked && sub.Mastered < sub.Words {
				return sub.LevelID, sub.SubLevel, true
			}
		}
	}
	return "", 0, false
}

func (s *gameService) StartRound(ctx context.Context, levelID string, subLevel int, opts ...round.Option) (ctrl *round.Controller, err error) {
	startedAt := time.Now()
	fields := map[string]any{"level_id": levelID, "sub_level": subLevel}
	defer func() { observe(ctx, s.observer, "start-round", startedAt, fields, err) }()

	if !s.progress.IsUnlocked(levelID, subLevel) {
		return nil, fmt.Errorf("%s/%d: %w", levelID, subLevel, domain.ErrSubLevelLocked)
	}

	settings := s.settings.Get(ctx)
	cfg := s.cfg.RoundConfig(settings)
	source := words.NewSource(s.words, cfg.Language, s.progress.Snapshot())

	ctrl, err = round.Start(levelID, subLevel, source, cfg, opts...)
	if err != nil {
		return nil, err
	}
	fields["round_id"] = ctrl.ID()
	fields["words"] = ctrl.State().Total
	fields["language"] = string(cfg.Language)
	return ctrl, nil
}

func (s *gameService) CompleteRound(ctx context.Context, summary *round.Summary) (res *RoundRecorded, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "complete-round", startedAt, fields, err) }()

	if summary == nil {
		return nil, fmt.Errorf("complete round: %w", domain.ErrInvalidState)
	}
	fields["round_id"] = summary.RoundID
	fields["level_id"] = summary.LevelID
	fields["sub_level"] = summary.SubLevel
	fields["stars"] = summary.Stars
	fields["score"] = summary.FinalScore

	rec, persistErr := s.progress.RecordCompletion(ctx, summary.Completion())
	if rec == nil {
		return nil, persistErr
	}

	s.updateDifficult(ctx, summary)
	s.appendHistory(ctx, summary)

	res = &RoundRecorded{Progress: rec, Stars: summary.Stars}
	res.NextLevelID, res.NextSubLevel, res.NextUnlocked = s.next(summary.LevelID, summary.SubLevel, rec)
	return res, persistErr
}

// next names the sub-level after (levelID, sub), moving on to the following
// level when sub was the last one.
func (s *gameService) next(levelID string, sub int, rec *domain.ProgressRecord) (string, int, bool) {
	if _, ok := s.words.Lookup(levelID, sub+1); ok {
		return levelID, sub + 1, rec.IsUnlocked(levelID, sub+1)
	}
	levels := s.words.Levels()
	for i, id := range levels {
		if id == levelID && i+1 < len(levels) {
			return levels[i+1], 1, true
		}
	}
	return "", 0, false
}

// updateDifficult is best-effort; the round result is already saved.
func (s *gameService) updateDifficult(ctx context.Context, summary *round.Summary) {
	missed := make([]string, 0, len(summary.Missed))
	for _, w := range summary.Missed {
		missed = append(missed, w.Key())
	}
	mastered := make([]string, 0, len(summary.Mastered))
	for _, w := range summary.Mastered {
		mastered = append(mastered, domain.WordKey(summary.LevelID, summary.SubLevel, w))
	}

	if len(missed) > 0 {
		if err := s.difficult.Add(ctx, missed...); err != nil {
			s.log.Warn().Err(err).Int("count", len(missed)).Msg("recording difficult words failed")
		}
	}
	if len(mastered) > 0 {
		if err := s.difficult.Remove(ctx, mastered...); err != nil {
			s.log.Warn().Err(err).Int("count", len(mastered)).Msg("clearing difficult words failed")
		}
	}
}

func (s *gameService) appendHistory(ctx context.Context, summary *round.Summary) {
	err := s.history.Append(ctx, &domain.RoundResult{
		ID:           summary.RoundID,
		LevelID:      summary.LevelID,
		SubLevel:     summary.SubLevel,
		Stars:        summary.Stars,
		Score:        summary.FinalScore,
		CorrectCount: summary.CorrectCount,
		TotalWords:   summary.TotalWords,
		FinishedAt:   s.now().UTC(),
	})
	if err != nil {
		s.log.Warn().Err(err).Str("round_id", summary.RoundID).Msg("appending round history failed")
	}
}

func (s *gameService) Reset(ctx context.Context, levelID string) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"level_id": levelID}
	defer func() { observe(ctx, s.observer, "reset-progress", startedAt, fields, err) }()

	if levelID != "" && !s.words.HasLevel(levelID) {
		return fmt.Errorf("unknown level %q", levelID)
	}
	_, err = s.progress.Reset(ctx, levelID)
	return err
}
