package service

import (
	"context"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
	"github.com/Thereal-Vadim/Word-Game/internal/round"
)

// GameService starts and records rounds and reports the level map.
type GameService interface {
	Levels(ctx context.Context) []LevelView
	// NextPlayable picks the first unlocked sub-level that is not yet
	// completed, or failing that the first one with words left.
	NextPlayable(ctx context.Context) (levelID string, subLevel int, ok bool)
	StartRound(ctx context.Context, levelID string, subLevel int, opts ...round.Option) (*round.Controller, error)
	// CompleteRound persists a finished round. The result is non-nil even
	// when the error wraps domain.ErrPersistence.
	CompleteRound(ctx context.Context, summary *round.Summary) (*RoundRecorded, error)
	Reset(ctx context.Context, levelID string) error
}

type SettingsService interface {
	// Get never fails: unreadable settings fall back to defaults.
	Get(ctx context.Context) domain.Settings
	Update(ctx context.Context, s domain.Settings) error
}

type DictionaryService interface {
	Entries(ctx context.Context, levelID string) ([]DictionaryEntry, error)
	Difficult(ctx context.Context) ([]DictionaryEntry, error)
}

type StatusService interface {
	Status(ctx context.Context, recent int) (*StatusView, error)
}
