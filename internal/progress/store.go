// Package progress owns the learner's durable progress record: it loads it
// fail-soft, folds finished rounds into it, persists after every change and
// answers unlock questions.
package progress

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
	"github.com/Thereal-Vadim/Word-Game/internal/repository"
	"github.com/rs/zerolog"
)

// Store caches the record in memory and writes it through to repo.
type Store struct {
	mu     sync.RWMutex
	repo   repository.ProgressRepo
	log    zerolog.Logger
	record *domain.ProgressRecord
}

func NewStore(repo repository.ProgressRepo, log zerolog.Logger) *Store {
	return &Store{
		repo:   repo,
		log:    log.With().Str("component", "progress").Logger(),
		record: domain.NewProgressRecord(),
	}
}

// Load reads the persisted record. A missing or unreadable record yields an
// empty one; storage faults never block play.
func (s *Store) Load(ctx context.Context) *domain.ProgressRecord {
	rec, err := s.repo.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrNotFound):
		s.log.Info().Msg("no saved progress, starting fresh")
		rec = domain.NewProgressRecord()
	default:
		s.log.Warn().Err(err).Msg("progress unreadable, starting fresh")
		rec = domain.NewProgressRecord()
	}

	s.mu.Lock()
	s.record = rec
	s.mu.Unlock()
	return rec.Clone()
}

// Snapshot returns a copy of the in-memory record.
func (s *Store) Snapshot() *domain.ProgressRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record.Clone()
}

func (s *Store) IsUnlocked(levelID string, subLevel int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record.IsUnlocked(levelID, subLevel)
}

// RecordCompletion folds c into the record and persists it. When the write
// fails twice the returned error wraps domain.ErrPersistence; the returned
// record still reflects c.
func (s *Store) RecordCompletion(ctx context.Context, c domain.Completion) (*domain.ProgressRecord, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("recording completion: %w", err)
	}

	s.mu.Lock()
	s.record.Apply(c)
	snapshot := s.record.Clone()
	s.mu.Unlock()

	s.log.Info().
		Str("level_id", c.LevelID).
		Int("sub_level", c.SubLevel).
		Int("stars", c.Stars).
		Int("score_delta", c.ScoreDelta).
		Int("mastered", len(c.Mastered)).
		Msg("round completed")

	if err := s.persist(ctx, snapshot); err != nil {
		return snapshot, err
	}
	return snapshot, nil
}

// Reset forgets stars and mastered words for levelID, or for every level
// when levelID is empty, and persists the result.
func (s *Store) Reset(ctx context.Context, levelID string) (*domain.ProgressRecord, error) {
	s.mu.Lock()
	s.record.ResetLevel(levelID)
	snapshot := s.record.Clone()
	s.mu.Unlock()

	s.log.Info().Str("level_id", levelID).Msg("progress reset")
	if err := s.persist(ctx, snapshot); err != nil {
		return snapshot, err
	}
	return snapshot, nil
}

// persist writes rec, retrying once.
func (s *Store) persist(ctx context.Context, rec *domain.ProgressRecord) error {
	err := s.repo.Save(ctx, rec)
	if err == nil {
		return nil
	}
	s.log.Warn().Err(err).Msg("saving progress failed, retrying")

	if err = s.repo.Save(ctx, rec); err == nil {
		return nil
	}
	s.log.Error().Err(err).Msg("saving progress failed")
	return fmt.Errorf("saving progress: %w: %w", domain.ErrPersistence, err)
}
