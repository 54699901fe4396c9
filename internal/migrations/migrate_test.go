package migrations_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/kalkulator/internal/db"
	"github.com/Simplici0/kalkulator/internal/migrations"
)

func TestUp_CreatesTablesAndIsRepeatable(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, migrations.Up(ctx, conn))
	require.NoError(t, migrations.Up(ctx, conn))

	v, err := migrations.Version(ctx, conn)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	for _, table := range []string{"products", "settings"} {
		var n int
		err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&n)
		require.NoError(t, err)
		assert.Equal(t, 1, n, table)
	}
}

func TestSettingsTableIsSingleton(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, migrations.Up(ctx, conn))

	_, err = conn.ExecContext(ctx, `
		INSERT INTO settings (id, mwst, stundenlohn, schnittpreis, einkaufspreis_formel, aufwand_formel)
		VALUES (2, 19, 60, 60, '1', '1')
	`)
	assert.Error(t, err)

	_, err = conn.ExecContext(ctx, `
		INSERT INTO settings (id, mwst, stundenlohn, schnittpreis, einkaufspreis_formel, aufwand_formel)
		VALUES (1, 120, 60, 60, '1', '1')
	`)
	assert.Error(t, err, "mwst above 100 must be rejected")
}
