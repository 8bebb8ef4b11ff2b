package repository

import (
	"context"
	"fmt"

	"github.com/Thereal-Vadim/Word-Game/internal/db"
)

type SQLiteDifficultWordRepo struct {
	db db.DBTX
}

func NewSQLiteDifficultWordRepo(conn db.DBTX) *SQLiteDifficultWordRepo {
	return &SQLiteDifficultWordRepo{db: conn}
}

func (r *SQLiteDifficultWordRepo) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT word_key FROM difficult_words ORDER BY word_key`)
	if err != nil {
		return nil, fmt.Errorf("listing difficult words: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scanning difficult word: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (r *SQLiteDifficultWordRepo) Add(ctx context.Context, keys ...string) error {
	now := nowUTC()
	for _, k := range dedupe(keys) {
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO difficult_words (word_key, added_at) VALUES (?, ?)`, k, now); err != nil {
			return fmt.Errorf("adding difficult word %s: %w", k, err)
		}
	}
	return nil
}

func (r *SQLiteDifficultWordRepo) Remove(ctx context.Context, keys ...string) error {
	for _, k := range dedupe(keys) {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM difficult_words WHERE word_key = ?`, k); err != nil {
			return fmt.Errorf("removing difficult word %s: %w", k, err)
		}
	}
	return nil
}
