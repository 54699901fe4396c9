package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Simplici0/kalkulator/internal/catalog"
)

// Selection flags shared by options and quote
var (
	selBehandlung string
	selProdukt    string
	selTyp        string
	selLaenge     string
)

// Options command flags
var (
	optionsField  string
	optionsSearch string
	optionsJSON   bool
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show the dropdown options for a selection",
	Long: `Show, for every attribute, which values are still available for the
given partial selection and which exist only elsewhere in the catalog.

Examples:
  kalk options --produkt "Easy Invisible"
  kalk options --produkt "Easy Invisible" --field typ
  kalk options --field produkt --search tape --json`,
	Args: cobra.NoArgs,
	RunE: runOptions,
}

func init() {
	addSelectionFlags(optionsCmd)
	optionsCmd.Flags().StringVar(&optionsField, "field", "", "only show this attribute")
	optionsCmd.Flags().StringVarP(&optionsSearch, "search", "s", "", "case-insensitive substring filter")
	optionsCmd.Flags().BoolVar(&optionsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(optionsCmd)
}

func addSelectionFlags(c *cobra.Command) {
	c.Flags().StringVar(&selBehandlung, "behandlung", "", "selected behandlung")
	c.Flags().StringVar(&selProdukt, "produkt", "", "selected produkt")
	c.Flags().StringVar(&selTyp, "typ", "", "selected typ")
	c.Flags().StringVar(&selLaenge, "laenge", "", "selected länge")
}

func selectionFromFlags() catalog.Selection {
	return catalog.Selection{
		catalog.Behandlung: selBehandlung,
		catalog.Produkt:    selProdukt,
		catalog.Typ:        selTyp,
		catalog.Laenge:     selLaenge,
	}.Clone()
}

func runOptions(cmd *cobra.Command, args []string) error {
	fields := catalog.Attributes
	if optionsField != "" {
		field, err := catalog.ParseAttribute(optionsField)
		if err != nil {
			return fmt.Errorf("invalid --field: %w", err)
		}
		fields = []catalog.Attribute{field}
	}

	e, err := openEnv(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	sel := selectionFromFlags()
	result := make(map[catalog.Attribute]catalog.Options, len(fields))
	for _, field := range fields {
		result[field] = catalog.Search(catalog.FilteredOptions(e.catalog.Products, field, sel), optionsSearch)
	}

	out := cmd.OutOrStdout()
	if optionsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FELD\tVERFÜGBAR\tNICHT VERFÜGBAR")
	for _, field := range fields {
		opts := result[field]
		fmt.Fprintf(tw, "%s\t%s\t%s\n", field, joinOrDash(opts.Available), joinOrDash(opts.Unavailable))
	}
	return tw.Flush()
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}
