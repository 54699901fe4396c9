package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Simplici0/kalkulator/internal/settings"
)

// SettingsRepository stores the settings singleton row.
type SettingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSettings returns the stored settings, or the defaults when the row does
// not exist yet.
func (r *SettingsRepository) GetSettings(ctx context.Context) (settings.Settings, error) {
	var s settings.Settings
	err := r.db.QueryRowContext(ctx, `
		SELECT mwst, stundenlohn, schnittpreis, einkaufspreis_formel, aufwand_formel
		FROM settings
		WHERE id = 1
	`).Scan(&s.Mwst, &s.Stundenlohn, &s.Schnittpreis, &s.EinkaufspreisFormel, &s.AufwandFormel)
	if errors.Is(err, sql.ErrNoRows) {
		return settings.Defaults(), nil
	}
	if err != nil {
		return settings.Settings{}, fmt.Errorf("query settings: %w", err)
	}
	return s, nil
}

func (r *SettingsRepository) SaveSettings(ctx context.Context, s settings.Settings) error {
	if _, err := r.db.ExecContext(ctx, upsertSettingsSQL,
		s.Mwst, s.Stundenlohn, s.Schnittpreis, s.EinkaufspreisFormel, s.AufwandFormel,
	); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

const upsertSettingsSQL = `
	INSERT INTO settings (id, mwst, stundenlohn, schnittpreis, einkaufspreis_formel, aufwand_formel)
	VALUES (1, ?, ?, ?, ?, ?)
	ON CONFLICT (id) DO UPDATE SET
		mwst = excluded.mwst,
		stundenlohn = excluded.stundenlohn,
		schnittpreis = excluded.schnittpreis,
		einkaufspreis_formel = excluded.einkaufspreis_formel,
		aufwand_formel = excluded.aufwand_formel,
		updated_at = CURRENT_TIMESTAMP
`
