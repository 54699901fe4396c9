package main

import (
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/kalkulator/internal/catalog"
	"github.com/Simplici0/kalkulator/internal/pricing"
	"github.com/Simplici0/kalkulator/internal/settings"
)

func TestQuote_FullRecompute(t *testing.T) {
	_, h := newTestServer(t, catalog.CascadeClear, catalog.MatchUnique)

	rr := do(t, h, http.MethodPost, "/api/quote", pricing.QuoteRequest{
		Selection: catalog.Selection{
			catalog.Behandlung: "Einsetzen",
			catalog.Produkt:    "Easy Invisible",
			catalog.Typ:        "10S",
			catalog.Laenge:     "40 cm",
		},
		Anzahl:      "3",
		Zeitaufwand: "2",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var q pricing.Quote
	decodeBody(t, rr, &q)
	require.NotNil(t, q.Product)
	assert.Equal(t, "18602158", q.Product.ArtikelID)
	assert.InDelta(t, 157.5, q.Result.Breakdown.Einkaufspreis, 1e-9)
	assert.InDelta(t, 29.925, q.Result.Breakdown.MwstBetrag, 1e-9)
	assert.InDelta(t, 120, q.Result.Breakdown.Aufwandsentschaedigung, 1e-9)
	assert.InDelta(t, 277.5, q.Result.Totals.Gesamtpreis, 1e-9)
	assert.Equal(t, []string{"10S"}, q.Options[catalog.Typ].Available)
	assert.Equal(t, []string{"10A"}, q.Options[catalog.Typ].Unavailable)
}

func TestQuote_FirstMatchPolicy(t *testing.T) {
	_, h := newTestServer(t, catalog.CascadeClear, catalog.MatchFirst)

	rr := do(t, h, http.MethodPost, "/api/quote", pricing.QuoteRequest{
		Selection: catalog.Selection{catalog.Behandlung: "Einsetzen", catalog.Produkt: "Easy Invisible"},
		Anzahl:    "1,5",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var q pricing.Quote
	decodeBody(t, rr, &q)
	require.NotNil(t, q.Product)
	assert.InDelta(t, 78.75, q.Result.Breakdown.Einkaufspreis, 1e-9)
}

func TestQuote_InvalidJSON(t *testing.T) {
	_, h := newTestServer(t, catalog.CascadeClear, catalog.MatchUnique)

	rr := do(t, h, http.MethodPost, "/api/quote", "not an object")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestFormulaEvaluate(t *testing.T) {
	_, h := newTestServer(t, catalog.CascadeClear, catalog.MatchUnique)

	rr := do(t, h, http.MethodPost, "/api/formula/evaluate", evaluateRequest{
		Template: "{preis} * {anzahl} * (1 + {mwst}/100)",
		Bindings: map[string]float64{"preis": 100, "anzahl": 2, "mwst": 19},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	var resp evaluateResponse
	decodeBody(t, rr, &resp)
	assert.InDelta(t, 238, resp.Value, 1e-9)
	assert.Empty(t, resp.Error)
	assert.Equal(t, []string{"preis", "anzahl", "mwst"}, resp.Placeholders)

	rr = do(t, h, http.MethodPost, "/api/formula/evaluate", evaluateRequest{Template: "{preis}; alert(1)"})
	require.Equal(t, http.StatusOK, rr.Code)
	resp = evaluateResponse{}
	decodeBody(t, rr, &resp)
	assert.Zero(t, resp.Value)
	assert.NotEmpty(t, resp.Error)
}

func TestFormulaEvaluate_DefaultBindingsUseSettings(t *testing.T) {
	_, h := newTestServer(t, catalog.CascadeClear, catalog.MatchUnique)

	rr := do(t, h, http.MethodPost, "/api/formula/evaluate", evaluateRequest{Template: "{stundenlohn} + {schnittpreis} + {preis}"})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp evaluateResponse
	decodeBody(t, rr, &resp)
	assert.Equal(t, 120.0, resp.Value)
}

func TestSettings_SaveAndGet(t *testing.T) {
	srv, h := newTestServer(t, catalog.CascadeClear, catalog.MatchUnique)

	form := settings.Form{
		Mwst:                "7",
		Stundenlohn:         "45,5",
		Schnittpreis:        "30",
		EinkaufspreisFormel: "{preis} * {anzahl}",
		AufwandFormel:       "{zeitaufwand} * {stundenlohn} + {schnittpreis}",
	}
	rr := do(t, h, http.MethodPut, "/api/settings", form)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var snap settings.Snapshot
	decodeBody(t, rr, &snap)
	assert.Equal(t, uint64(1), snap.Version)
	assert.Equal(t, 45.5, snap.Settings.Stundenlohn)
	assert.Equal(t, 7.0, srv.settings.Snapshot().Settings.Mwst)

	rr = do(t, h, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	snap = settings.Snapshot{}
	decodeBody(t, rr, &snap)
	assert.Equal(t, "{zeitaufwand} * {stundenlohn} + {schnittpreis}", snap.Settings.AufwandFormel)

	// Later quotes use the saved settings.
	rr = do(t, h, http.MethodPost, "/api/quote", pricing.QuoteRequest{Zeitaufwand: "2"})
	var q pricing.Quote
	decodeBody(t, rr, &q)
	assert.Equal(t, uint64(1), q.SettingsVersion)
	assert.InDelta(t, 121, q.Result.Breakdown.Aufwandsentschaedigung, 1e-9)
	assert.False(t, math.IsNaN(q.Result.Totals.Gesamtpreis))
}

func TestSettings_SaveRejectsInvalidFields(t *testing.T) {
	srv, h := newTestServer(t, catalog.CascadeClear, catalog.MatchUnique)

	cases := []struct {
		form  settings.Form
		field string
	}{
		{settings.Form{Mwst: "150", Stundenlohn: "60", Schnittpreis: "60", EinkaufspreisFormel: "1", AufwandFormel: "1"}, "mwst"},
		{settings.Form{Mwst: "19", Stundenlohn: "-1", Schnittpreis: "60", EinkaufspreisFormel: "1", AufwandFormel: "1"}, "stundenlohn"},
		{settings.Form{Mwst: "19", Stundenlohn: "60", Schnittpreis: "x", EinkaufspreisFormel: "1", AufwandFormel: "1"}, "schnittpreis"},
		{settings.Form{Mwst: "19", Stundenlohn: "60", Schnittpreis: "60", EinkaufspreisFormel: "{rabatt}", AufwandFormel: "1"}, "einkaufspreisFormel"},
	}
	for _, tc := range cases {
		rr := do(t, h, http.MethodPut, "/api/settings", tc.form)
		require.Equal(t, http.StatusBadRequest, rr.Code)

		var resp errorResponse
		decodeBody(t, rr, &resp)
		assert.Equal(t, tc.field, resp.Field)
	}
	assert.Equal(t, uint64(0), srv.settings.Snapshot().Version)
}
