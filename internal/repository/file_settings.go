package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
)

type FileSettingsRepo struct {
	mu   sync.Mutex
	path string
}

func NewFileSettingsRepo(path string) *FileSettingsRepo {
	return &FileSettingsRepo{path: path}
}

// Get returns the stored settings with missing fields defaulted.
// soundEnabled is decoded over the default so an absent key keeps sound on.
func (r *FileSettingsRepo) Get(_ context.Context) (domain.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := domain.DefaultSettings()
	if err := readJSONFile(r.path, &s); err != nil {
		return domain.Settings{}, err
	}
	return s.WithDefaults(), nil
}

func (r *FileSettingsRepo) Upsert(_ context.Context, s domain.Settings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return writeJSONFile(r.path, s)
}
