package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Simplici0/kalkulator/internal/catalog"
	"github.com/Simplici0/kalkulator/internal/settings"
)

// Config contains the values required by startup seed.
type Config struct {
	// Catalog enables seeding the initial product catalog into an empty
	// products table.
	Catalog bool
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Updates int
}

// Run executes the startup seed in an idempotent way.
func Run(ctx context.Context, db *sql.DB, cfg Config) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := ensureSettings(ctx, tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if cfg.Catalog {
		if err := ensureCatalog(ctx, tx, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

// InitialProducts returns a copy of the built-in catalog without IDs.
func InitialProducts() []catalog.Product {
	return append([]catalog.Product(nil), initialProducts...)
}

func ensureSettings(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM settings WHERE id = 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check settings existence: %w", err)
	}
	if exists {
		return nil
	}

	d := settings.Defaults()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO settings (id, mwst, stundenlohn, schnittpreis, einkaufspreis_formel, aufwand_formel)
		VALUES (1, ?, ?, ?, ?, ?)
	`, d.Mwst, d.Stundenlohn, d.Schnittpreis, d.EinkaufspreisFormel, d.AufwandFormel); err != nil {
		return fmt.Errorf("insert settings singleton: %w", err)
	}
	stats.Inserts++
	return nil
}

// ensureCatalog only fills an empty table; a catalog the user emptied on
// purpose is refilled on the next start.
func ensureCatalog(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM products LIMIT 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check products existence: %w", err)
	}
	if exists {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (id, behandlung, produkt, typ, laenge, artikel_id, preis, info)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert product: %w", err)
	}
	defer stmt.Close()

	for _, p := range initialProducts {
		if _, err := stmt.ExecContext(ctx, catalog.NewID(), p.Behandlung, p.Produkt, p.Typ, p.Laenge, p.ArtikelID, p.Preis, p.Info); err != nil {
			return fmt.Errorf("insert initial product %s: %w", p.ArtikelID, err)
		}
		stats.Inserts++
	}
	return nil
}
