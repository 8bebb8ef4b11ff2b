package repository

import (
	"context"
	"fmt"

	"github.com/Thereal-Vadim/Word-Game/internal/db"
	"github.com/Thereal-Vadim/Word-Game/internal/domain"
)

// SQLiteHistoryRepo implements HistoryRepo using the round_history table.
type SQLiteHistoryRepo struct {
	db db.DBTX
}

func NewSQLiteHistoryRepo(conn db.DBTX) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: conn}
}

func (r *SQLiteHistoryRepo) Append(ctx context.Context, h *domain.RoundResult) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO round_history (id, level_id, sub_level, stars, score, correct_count, total_words, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.LevelID, h.SubLevel, h.Stars, h.Score, h.CorrectCount, h.TotalWords,
		h.FinishedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("inserting round result: %w", err)
	}
	return nil
}

func (r *SQLiteHistoryRepo) ListRecent(ctx context.Context, limit int) ([]*domain.RoundResult, error) {
	query := `SELECT id, level_id, sub_level, stars, score, correct_count, total_words, finished_at
		FROM round_history ORDER BY finished_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing round history: %w", err)
	}
	defer rows.Close()

	var out []*domain.RoundResult
	for rows.Next() {
		var h domain.RoundResult
		var finished string
		if err := rows.Scan(&h.ID, &h.LevelID, &h.SubLevel, &h.Stars, &h.Score,
			&h.CorrectCount, &h.TotalWords, &finished); err != nil {
			return nil, fmt.Errorf("scanning round result: %w", err)
		}
		h.FinishedAt = parseTime(finished)
		out = append(out, &h)
	}
	return out, rows.Err()
}
