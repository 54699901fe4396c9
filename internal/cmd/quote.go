package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Simplici0/kalkulator/internal/catalog"
	"github.com/Simplici0/kalkulator/internal/pricing"
)

// Quote command flags
var (
	quoteAnzahl      string
	quoteZeitaufwand string
	quoteMatch       string
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a selection with the stored formulas",
	Long: `Resolve the selected product and compute purchase price, tax amount,
labor surcharge and total with the settings stored in the database.

Examples:
  kalk quote --behandlung Einsetzen --produkt "Easy Invisible" --typ "3.5 OM" --laenge "40 cm" --anzahl 3 --zeitaufwand 2
  kalk quote --produkt "Easy Invisible" --anzahl 3 --match first`,
	Args: cobra.NoArgs,
	RunE: runQuote,
}

func init() {
	addSelectionFlags(quoteCmd)
	quoteCmd.Flags().StringVar(&quoteAnzahl, "anzahl", "", "quantity")
	quoteCmd.Flags().StringVar(&quoteZeitaufwand, "zeitaufwand", "", "time spent in hours")
	quoteCmd.Flags().StringVar(&quoteMatch, "match", "", "product match policy: unique or first (default $PRODUCT_MATCH)")
	rootCmd.AddCommand(quoteCmd)
}

func runQuote(cmd *cobra.Command, args []string) error {
	e, err := openEnv(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	policy, err := e.cfg.Match()
	if err != nil {
		return err
	}
	if quoteMatch != "" {
		if policy, err = catalog.ParseMatchPolicy(quoteMatch); err != nil {
			return fmt.Errorf("invalid --match: %w", err)
		}
	}

	q := pricing.BuildQuote(e.catalog, e.settings, pricing.QuoteRequest{
		Selection:   selectionFromFlags(),
		Anzahl:      quoteAnzahl,
		Zeitaufwand: quoteZeitaufwand,
	}, policy)

	out := cmd.OutOrStdout()
	if q.Product != nil {
		p := q.Product
		fmt.Fprintf(out, "Produkt:                %s / %s / %s / %s (Artikel %s, %s)\n",
			p.Behandlung, p.Produkt, p.Typ, p.Laenge, p.ArtikelID, euro(p.Preis))
	} else {
		fmt.Fprintln(out, "Produkt:                kein eindeutiges Produkt")
	}
	b := q.Result.Breakdown
	fmt.Fprintf(out, "Einkaufspreis (Brutto): %s\n", euro(b.Einkaufspreis))
	fmt.Fprintf(out, "MwSt (%s %%):           %s\n", strings.ReplaceAll(strconv.FormatFloat(e.settings.Settings.Mwst, 'f', -1, 64), ".", ","), euro(b.MwstBetrag))
	fmt.Fprintf(out, "Aufwandsentschädigung:  %s\n", euro(b.Aufwandsentschaedigung))
	fmt.Fprintf(out, "Gesamtpreis:            %s\n", euro(q.Result.Totals.Gesamtpreis))
	return nil
}
