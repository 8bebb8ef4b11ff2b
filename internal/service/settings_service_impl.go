package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
	"github.com/Thereal-Vadim/Word-Game/internal/repository"
	"github.com/rs/zerolog"
)

type settingsService struct {
	repo     repository.SettingsRepo
	log      zerolog.Logger
	observer UseCaseObserver

	mu     sync.RWMutex
	cached *domain.Settings
}

func NewSettingsService(repo repository.SettingsRepo, log zerolog.Logger, observers ...UseCaseObserver) SettingsService {
	return &settingsService{
		repo:     repo,
		log:      log.With().Str("component", "settings").Logger(),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *settingsService) Get(ctx context.Context) domain.Settings {
	s.mu.RLock()
	if s.cached != nil {
		defer s.mu.RUnlock()
		return *s.cached
	}
	s.mu.RUnlock()

	loaded, err := s.repo.Get(ctx)
	switch {
	case err == nil:
		loaded = loaded.WithDefaults()
		if verr := loaded.Validate(); verr != nil {
			s.log.Warn().Err(verr).Msg("stored settings invalid, using defaults")
			loaded = domain.DefaultSettings()
		}
	case errors.Is(err, repository.ErrNotFound):
		loaded = domain.DefaultSettings()
	default:
		s.log.Warn().Err(err).Msg("settings unreadable, using defaults")
		loaded = domain.DefaultSettings()
	}

	s.mu.Lock()
	s.cached = &loaded
	s.mu.Unlock()
	return loaded
}

func (s *settingsService) Update(ctx context.Context, next domain.Settings) (err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"timer":    next.TimerDuration,
		"language": string(next.Language),
		"sound":    next.SoundEnabled,
		"theme":    string(next.Theme),
	}
	defer func() { observe(ctx, s.observer, "update-settings", startedAt, fields, err) }()

	if err = next.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	if err = s.repo.Upsert(ctx, next); err != nil {
		return fmt.Errorf("saving settings: %w: %w", domain.ErrPersistence, err)
	}

	s.mu.Lock()
	s.cached = &next
	s.mu.Unlock()
	return nil
}
