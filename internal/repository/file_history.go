package repository

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Thereal-Vadim/Word-Game/internal/domain"
)

type historyLine struct {
	ID           string    `json:"id"`
	LevelID      string    `json:"levelId"`
	SubLevel     int       `json:"subLevel"`
	Stars        int       `json:"stars"`
	Score        int       `json:"score"`
	CorrectCount int       `json:"correctCount"`
	TotalWords   int       `json:"totalWords"`
	FinishedAt   time.Time `json:"finishedAt"`
}

// FileHistoryRepo appends one JSON object per line. Lines that fail to
// decode are skipped on read.
type FileHistoryRepo struct {
	mu   sync.Mutex
	path string
}

func NewFileHistoryRepo(path string) *FileHistoryRepo {
	return &FileHistoryRepo{path: path}
}

func (r *FileHistoryRepo) Append(_ context.Context, h *domain.RoundResult) error {
	line, err := json.Marshal(historyLine{
		ID:           h.ID,
		LevelID:      h.LevelID,
		SubLevel:     h.SubLevel,
		Stars:        h.Stars,
		Score:        h.Score,
		CorrectCount: h.CorrectCount,
		TotalWords:   h.TotalWords,
		FinishedAt:   h.FinishedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("encoding round result: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		f.Close()
		return fmt.Errorf("appending round result: %w", err)
	}
	return f.Close()
}

func (r *FileHistoryRepo) ListRecent(_ context.Context, limit int) ([]*domain.RoundResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()

	var all []*domain.RoundResult
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var l historyLine
		if err := json.Unmarshal(sc.Bytes(), &l); err != nil || l.ID == "" {
			continue
		}
		all = append(all, &domain.RoundResult{
			ID:           l.ID,
			LevelID:      l.LevelID,
			SubLevel:     l.SubLevel,
			Stars:        l.Stars,
			Score:        l.Score,
			CorrectCount: l.CorrectCount,
			TotalWords:   l.TotalWords,
			FinishedAt:   l.FinishedAt,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	// file order is append order; reverse for newest first
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}
