package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
)

// ErrInjected is the default fault returned by FlakyProgressRepo.
var ErrInjected = errors.New("injected storage fault")

// FlakyProgressRepo is an in-memory progress repository whose Save fails for
// the first FailSaves calls and whose Load returns LoadErr when set.
type FlakyProgressRepo struct {
	mu        sync.Mutex
	FailSaves int
	LoadErr   error
	Err       error

	Saved     *domain.ProgressRecord
	SaveCalls int
}

func (r *FlakyProgressRepo) Load(_ context.Context) (*domain.ProgressRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	if r.Saved == nil {
		return nil, errNotSaved
	}
	return r.Saved.Clone(), nil
}

func (r *FlakyProgressRepo) Save(_ context.Context, p *domain.ProgressRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.SaveCalls++
	if r.SaveCalls <= r.FailSaves {
		if r.Err != nil {
			return r.Err
		}
		return ErrInjected
	}
	r.Saved = p.Clone()
	return nil
}

var errNotSaved = errors.New("nothing saved")
