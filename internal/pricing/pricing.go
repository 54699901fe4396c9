package pricing

import (
	"math"
	"strconv"
	"strings"

	"github.com/Simplici0/kalkulator/internal/catalog"
	"github.com/Simplici0/kalkulator/internal/formula"
	"github.com/Simplici0/kalkulator/internal/settings"
)

// Input represents the item-level values entered for one calculation.
type Input struct {
	Preis       float64
	Anzahl      float64
	Zeitaufwand float64
}

// Breakdown contains the line-item values of the calculation.
type Breakdown struct {
	Einkaufspreis          float64 `json:"einkaufspreisBrutto"`
	MwstBetrag             float64 `json:"mwstBetrag"`
	Aufwandsentschaedigung float64 `json:"aufwandsentschaedigung"`
}

// Totals contains roll-up values from the calculation.
type Totals struct {
	Gesamtpreis float64 `json:"gesamtpreis"`
}

// Result groups the full pricing output, including breakdown and totals.
type Result struct {
	Breakdown Breakdown `json:"breakdown"`
	Totals    Totals    `json:"totals"`
}

// ParseAmount reads a live numeric input. Both "." and "," are accepted as
// decimal separator; anything that does not parse yields 0.
func ParseAmount(raw string) float64 {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Bindings builds the variable set for the formulas. It is rebuilt for every
// calculation and never stored.
func Bindings(in Input, s settings.Settings) map[string]float64 {
	return map[string]float64{
		formula.VarPreis:        in.Preis,
		formula.VarAnzahl:       in.Anzahl,
		formula.VarZeitaufwand:  in.Zeitaufwand,
		formula.VarStundenlohn:  s.Stundenlohn,
		formula.VarSchnittpreis: s.Schnittpreis,
		formula.VarMwst:         s.Mwst,
	}
}

// Calculate evaluates both formulas and derives tax and total.
func Calculate(in Input, s settings.Settings) Result {
	vars := Bindings(in, s)

	einkauf := formula.Evaluate(s.EinkaufspreisFormel, vars)
	aufwand := formula.Evaluate(s.AufwandFormel, vars)
	mwstBetrag := einkauf * (s.Mwst / 100.0)

	return Result{
		Breakdown: Breakdown{
			Einkaufspreis:          einkauf,
			MwstBetrag:             mwstBetrag,
			Aufwandsentschaedigung: aufwand,
		},
		Totals: Totals{Gesamtpreis: einkauf + aufwand},
	}
}

// QuoteRequest is the raw state of the calculator form.
type QuoteRequest struct {
	Selection   catalog.Selection `json:"selection"`
	Anzahl      string            `json:"anzahl"`
	Zeitaufwand string            `json:"zeitaufwand"`
}

// Quote is the full recompute for one calculator state.
type Quote struct {
	CatalogVersion  uint64                                `json:"catalogVersion"`
	SettingsVersion uint64                                `json:"settingsVersion"`
	Selection       catalog.Selection                     `json:"selection"`
	Options         map[catalog.Attribute]catalog.Options `json:"options"`
	Product         *catalog.Product                      `json:"product,omitempty"`
	Result          Result                                `json:"result"`
}

// BuildQuote resolves the selected product against the catalog snapshot and
// prices it with the settings snapshot. A selection without a match is priced
// with preis 0.
func BuildQuote(cat *catalog.Snapshot, set *settings.Snapshot, req QuoteRequest, policy catalog.MatchPolicy) Quote {
	sel := req.Selection.Clone()

	q := Quote{
		CatalogVersion:  cat.Version,
		SettingsVersion: set.Version,
		Selection:       sel,
		Options:         catalog.AllOptions(cat.Products, sel),
	}

	in := Input{
		Anzahl:      ParseAmount(req.Anzahl),
		Zeitaufwand: ParseAmount(req.Zeitaufwand),
	}
	if p, ok := catalog.Match(cat.Products, sel, policy); ok {
		q.Product = &p
		in.Preis = p.Preis
	}

	q.Result = Calculate(in, set.Settings)
	return q
}
