package repository

import (
	"context"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
)

// ProgressRepo stores the single learner progress record. Load returns
// ErrNotFound when nothing has been saved yet.
type ProgressRepo interface {
	Load(ctx context.Context) (*domain.ProgressRecord, error)
	Save(ctx context.Context, p *domain.ProgressRecord) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (domain.Settings, error)
	Upsert(ctx context.Context, s domain.Settings) error
}

// DifficultWordRepo is the set of word keys (see domain.WordKey) the learner
// has missed and not yet answered correctly since.
type DifficultWordRepo interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, keys ...string) error
	Remove(ctx context.Context, keys ...string) error
}

type HistoryRepo interface {
	Append(ctx context.Context, r *domain.RoundResult) error
	// ListRecent returns up to limit results, newest first. limit <= 0 means all.
	ListRecent(ctx context.Context, limit int) ([]*domain.RoundResult, error)
}

// Stores bundles one implementation of every repository.
type Stores struct {
	Progress  ProgressRepo
	Settings  SettingsRepo
	Difficult DifficultWordRepo
	History   HistoryRepo
}
