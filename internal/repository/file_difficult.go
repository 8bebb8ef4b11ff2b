package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// FileDifficultWordRepo keeps the set as a JSON object of key -> true.
type FileDifficultWordRepo struct {
	mu   sync.Mutex
	path string
}

func NewFileDifficultWordRepo(path string) *FileDifficultWordRepo {
	return &FileDifficultWordRepo{path: path}
}

func (r *FileDifficultWordRepo) read() (map[string]bool, error) {
	set := make(map[string]bool)
	if err := readJSONFile(r.path, &set); err != nil {
		if errors.Is(err, ErrNotFound) {
			return make(map[string]bool), nil
		}
		return nil, err
	}
	return set, nil
}

func (r *FileDifficultWordRepo) List(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, err := r.read()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(set))
	for k, ok := range set {
		if ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (r *FileDifficultWordRepo) Add(_ context.Context, keys ...string) error {
	return r.update(func(set map[string]bool) bool {
		changed := false
		for _, k := range dedupe(keys) {
			if !set[k] {
				set[k] = true
				changed = true
			}
		}
		return changed
	})
}

func (r *FileDifficultWordRepo) Remove(_ context.Context, keys ...string) error {
	return r.update(func(set map[string]bool) bool {
		changed := false
		for _, k := range dedupe(keys) {
			if _, ok := set[k]; ok {
				delete(set, k)
				changed = true
			}
		}
		return changed
	})
}

func (r *FileDifficultWordRepo) update(fn func(map[string]bool) bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, err := r.read()
	if err != nil {
		return err
	}
	if !fn(set) {
		return nil
	}
	return writeJSONFile(r.path, set)
}
