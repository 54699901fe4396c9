package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Simplici0/kalkulator/internal/catalog"
	"github.com/Simplici0/kalkulator/internal/db"
	"github.com/Simplici0/kalkulator/internal/export"
)

// Export/import command flags
var (
	exportOut        string
	importBehandlung string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the product catalog to an Excel file",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Append products from an Excel file",
	Long: `Append the rows of the "Produkte" sheet to the catalog. All rows get the
behandlung given with --behandlung; rows without produkt or with an
unreadable preis are skipped.

Examples:
  kalk export --out produkte.xlsx
  kalk import --behandlung Einsetzen produkte.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "produkte.xlsx", "output file")
	importCmd.Flags().StringVar(&importBehandlung, "behandlung", "", "behandlung for all imported rows (required)")
	_ = importCmd.MarkFlagRequired("behandlung")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	e, err := openEnv(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", exportOut, err)
	}
	if err := export.WriteCatalog(f, e.catalog.Products); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", exportOut, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d Produkte nach %s exportiert\n", len(e.catalog.Products), exportOut)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer f.Close()

	rows, skipped, err := export.ReadCatalog(f)
	if err != nil {
		return err
	}

	e, err := openEnv(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	store := catalog.NewStore(db.NewProductRepository(e.db))
	if err := store.Load(cmd.Context()); err != nil {
		return err
	}
	imported, err := store.Import(cmd.Context(), importBehandlung, rows)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d Produkte importiert, %d übersprungen\n", len(imported), skipped+len(rows)-len(imported))
	return nil
}
