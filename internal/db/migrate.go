package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement. Statements are written to be
// re-runnable, so Migrate is safe on an already current database.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateDifficultWordKeys(db); err != nil {
		return fmt.Errorf("normalizing difficult word keys: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS progress (
		id               TEXT PRIMARY KEY DEFAULT 'default',
		current_level_id TEXT NOT NULL DEFAULT '',
		cumulative_score INTEGER NOT NULL DEFAULT 0 CHECK(cumulative_score >= 0),
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS sub_level_stars (
		level_id   TEXT NOT NULL,
		sub_level  INTEGER NOT NULL CHECK(sub_level >= 1),
		stars      INTEGER NOT NULL CHECK(stars BETWEEN 0 AND 3),
		updated_at TEXT NOT NULL,
		PRIMARY KEY (level_id, sub_level)
	)`,

	`CREATE TABLE IF NOT EXISTS completed_words (
		level_id  TEXT NOT NULL,
		sub_level INTEGER NOT NULL CHECK(sub_level >= 1),
		word      TEXT NOT NULL,
		PRIMARY KEY (level_id, sub_level, word)
	)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id             TEXT PRIMARY KEY DEFAULT 'default',
		timer_duration INTEGER NOT NULL DEFAULT 30 CHECK(timer_duration > 0),
		language       TEXT NOT NULL DEFAULT 'en'
		               CHECK(language IN ('en','ru','de','fr')),
		sound_enabled  INTEGER NOT NULL DEFAULT 1
	)`,

	`INSERT OR IGNORE INTO settings (id) VALUES ('default')`,

	// theme arrived after the first release
	`ALTER TABLE settings ADD COLUMN theme TEXT NOT NULL DEFAULT 'dark'`,

	`CREATE TABLE IF NOT EXISTS difficult_words (
		word_key TEXT PRIMARY KEY,
		added_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS round_history (
		id            TEXT PRIMARY KEY,
		level_id      TEXT NOT NULL,
		sub_level     INTEGER NOT NULL,
		stars         INTEGER NOT NULL CHECK(stars BETWEEN 0 AND 3),
		score         INTEGER NOT NULL,
		correct_count INTEGER NOT NULL,
		total_words   INTEGER NOT NULL,
		finished_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_round_history_finished ON round_history(finished_at)`,
	`CREATE INDEX IF NOT EXISTS idx_round_history_level ON round_history(level_id, sub_level)`,
}

// migrateDifficultWordKeys lower-cases the word part of keys written by
// builds that stored the word as typed. Rows that collide with an existing
// canonical key are dropped.
func migrateDifficultWordKeys(db *sql.DB) error {
	ctx := context.Background()

	var count int
	if err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM difficult_words WHERE word_key != lower(word_key)`).Scan(&count); err != nil {
		return fmt.Errorf("counting legacy keys: %w", err)
	}
	if count == 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting migration transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO difficult_words (word_key, added_at)
		SELECT lower(word_key), added_at FROM difficult_words WHERE word_key != lower(word_key)`); err != nil {
		return fmt.Errorf("copying canonical keys: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM difficult_words WHERE word_key != lower(word_key)`); err != nil {
		return fmt.Errorf("removing legacy keys: %w", err)
	}
	return tx.Commit()
}
