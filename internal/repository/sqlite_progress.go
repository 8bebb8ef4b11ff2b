package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Thereal-Vadim/Word-Game/internal/db"
	"github.com/Thereal-Vadim/Word-Game/internal/domain"
)

// SQLiteProgressRepo implements ProgressRepo over the progress,
// sub_level_stars and completed_words tables. Save replaces all three
// inside one transaction.
type SQLiteProgressRepo struct {
	db  db.DBTX
	uow db.UnitOfWork
}

func NewSQLiteProgressRepo(database *sql.DB) *SQLiteProgressRepo {
	return NewSQLiteProgressRepoWithUoW(database, db.NewSQLiteUnitOfWork(database))
}

// NewSQLiteProgressRepoWithUoW lets tests substitute the transaction runner.
func NewSQLiteProgressRepoWithUoW(conn db.DBTX, uow db.UnitOfWork) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn, uow: uow}
}

func (r *SQLiteProgressRepo) Load(ctx context.Context) (*domain.ProgressRecord, error) {
	p := domain.NewProgressRecord()

	err := r.db.QueryRowContext(ctx,
		`SELECT current_level_id, cumulative_score FROM progress WHERE id = 'default'`).
		Scan(&p.CurrentLevelID, &p.CumulativeScore)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("progress: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning progress: %w", err)
	}

	if err := r.loadStars(ctx, p); err != nil {
		return nil, err
	}
	if err := r.loadWords(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProgressRepo) loadStars(ctx context.Context, p *domain.ProgressRecord) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT level_id, sub_level, stars FROM sub_level_stars ORDER BY level_id, sub_level`)
	if err != nil {
		return fmt.Errorf("listing sub-level stars: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var level string
		var sub, stars int
		if err := rows.Scan(&level, &sub, &stars); err != nil {
			return fmt.Errorf("scanning sub-level stars: %w", err)
		}
		if p.StarsBySubLevel[level] == nil {
			p.StarsBySubLevel[level] = make(map[int]int)
		}
		p.StarsBySubLevel[level][sub] = stars
	}
	return rows.Err()
}

func (r *SQLiteProgressRepo) loadWords(ctx context.Context, p *domain.ProgressRecord) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT level_id, sub_level, word FROM completed_words ORDER BY level_id, sub_level, word`)
	if err != nil {
		return fmt.Errorf("listing completed words: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var level, word string
		var sub int
		if err := rows.Scan(&level, &sub, &word); err != nil {
			return fmt.Errorf("scanning completed word: %w", err)
		}
		if p.CompletedWords[level] == nil {
			p.CompletedWords[level] = make(map[int]map[string]bool)
		}
		if p.CompletedWords[level][sub] == nil {
			p.CompletedWords[level][sub] = make(map[string]bool)
		}
		p.CompletedWords[level][sub][word] = true
	}
	return rows.Err()
}

func (r *SQLiteProgressRepo) Save(ctx context.Context, p *domain.ProgressRecord) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		now := nowUTC()
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO progress (id, current_level_id, cumulative_score, updated_at)
			VALUES ('default', ?, ?, ?)`,
			p.CurrentLevelID, p.CumulativeScore, now); err != nil {
			return fmt.Errorf("upserting progress: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM sub_level_stars`); err != nil {
			return fmt.Errorf("clearing sub-level stars: %w", err)
		}
		for level, subs := range p.StarsBySubLevel {
			for sub, stars := range subs {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO sub_level_stars (level_id, sub_level, stars, updated_at) VALUES (?, ?, ?, ?)`,
					level, sub, stars, now); err != nil {
					return fmt.Errorf("inserting stars for %s/%d: %w", level, sub, err)
				}
			}
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM completed_words`); err != nil {
			return fmt.Errorf("clearing completed words: %w", err)
		}
		for level, bySub := range p.CompletedWords {
			for sub, words := range bySub {
				for word, ok := range words {
					if !ok {
						continue
					}
					if _, err := tx.ExecContext(ctx,
						`INSERT INTO completed_words (level_id, sub_level, word) VALUES (?, ?, ?)`,
						level, sub, word); err != nil {
						return fmt.Errorf("inserting completed word %s/%d/%s: %w", level, sub, word, err)
					}
				}
			}
		}
		return nil
	})
}
