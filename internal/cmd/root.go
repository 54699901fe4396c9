// Package cmd implements the kalk command line.
package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Simplici0/kalkulator/internal/catalog"
	"github.com/Simplici0/kalkulator/internal/config"
	"github.com/Simplici0/kalkulator/internal/db"
	"github.com/Simplici0/kalkulator/internal/logger"
	"github.com/Simplici0/kalkulator/internal/migrations"
	"github.com/Simplici0/kalkulator/internal/seed"
	"github.com/Simplici0/kalkulator/internal/settings"
)

// Global flags
var (
	dbPath  string
	envFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "kalk",
	Short: "Pricing calculator for the salon product catalog",
	Long: `kalk evaluates pricing formulas and resolves the dependent product
dropdowns against the catalog stored in the calculator database.

Configuration is read from the environment (and .env); run "kalk env" for
the list of variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (default $DB_PATH)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// env is what a command needs to talk to the calculator database.
type env struct {
	cfg      config.Config
	log      *slog.Logger
	db       *sql.DB
	catalog  *catalog.Snapshot
	settings *settings.Snapshot
}

func (e *env) Close() error {
	return e.db.Close()
}

// openEnv loads config, opens and migrates the database and loads both
// snapshots. The seed runs so a fresh database behaves like the server's.
func openEnv(ctx context.Context, cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	logOut := io.Discard
	if verbose {
		logOut = cmd.ErrOrStderr()
	}
	log := logger.New(cfg.Env, logOut)

	database, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := migrations.Up(ctx, database); err != nil {
		database.Close()
		return nil, err
	}
	stats, err := seed.Run(ctx, database, seed.Config{Catalog: cfg.SeedCatalog})
	if err != nil {
		database.Close()
		return nil, err
	}
	log.Debug("database ready", slog.String("path", cfg.DBPath), slog.Int("seed_inserts", stats.Inserts))

	cat := catalog.NewStore(db.NewProductRepository(database))
	if err := cat.Load(ctx); err != nil {
		database.Close()
		return nil, err
	}
	set := settings.NewStore(db.NewSettingsRepository(database))
	if err := set.Load(ctx); err != nil {
		database.Close()
		return nil, err
	}

	return &env{cfg: cfg, log: log, db: database, catalog: cat.Snapshot(), settings: set.Snapshot()}, nil
}

// printer formats numbers the way German users read them.
var printer = message.NewPrinter(language.German)

func euro(v float64) string {
	return printer.Sprintf("%.2f €", v)
}
