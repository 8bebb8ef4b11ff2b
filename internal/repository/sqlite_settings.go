package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Thereal-Vadim/Word-Game/internal/db"
	"github.com/Thereal-Vadim/Word-Game/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo on the single 'default' row.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (domain.Settings, error) {
	var s domain.Settings
	var lang, theme string
	var sound int
	err := r.db.QueryRowContext(ctx,
		`SELECT timer_duration, language, sound_enabled, theme FROM settings WHERE id = 'default'`).
		Scan(&s.TimerDuration, &lang, &sound, &theme)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Settings{}, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return domain.Settings{}, fmt.Errorf("scanning settings: %w", err)
	}
	s.Language = domain.Language(lang)
	s.Theme = domain.Theme(theme)
	s.SoundEnabled = intToBool(sound)
	return s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s domain.Settings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO settings (id, timer_duration, language, sound_enabled, theme)
		VALUES ('default', ?, ?, ?, ?)`,
		s.TimerDuration, string(s.Language), boolToInt(s.SoundEnabled), string(s.Theme))
	if err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}
