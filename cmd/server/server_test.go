package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/kalkulator/internal/catalog"
	"github.com/Simplici0/kalkulator/internal/config"
	"github.com/Simplici0/kalkulator/internal/settings"
)

func testProducts() []catalog.Product {
	return []catalog.Product{
		{ID: "1", Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "10S", Laenge: "40 cm", ArtikelID: "18602158", Preis: 52.50, Info: "4 cm breit / Inhalt: 3 Stk."},
		{ID: "2", Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "10A", Laenge: "55 cm", ArtikelID: "18602214", Preis: 92.00},
		{ID: "3", Behandlung: "Einsetzen", Produkt: "Easy Length", Typ: "10A", Laenge: "55 cm", Preis: 195},
	}
}

func newTestServer(t *testing.T, cascade catalog.CascadePolicy, match catalog.MatchPolicy) (*server, http.Handler) {
	t.Helper()

	cat := catalog.NewStore(nil)
	cat.Replace(testProducts())
	set := settings.NewStore(nil)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := newServer(log, cat, set, cascade, match)
	return srv, srv.routes(config.Config{})
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), rr.Body.String())
}

func TestHealth(t *testing.T) {
	_, h := newTestServer(t, catalog.CascadeClear, catalog.MatchUnique)

	rr := do(t, h, http.MethodGet, "/healthz", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"ok"`)
}

func TestOptions_ProduktNarrowsTyp(t *testing.T) {
	_, h := newTestServer(t, catalog.CascadeClear, catalog.MatchUnique)

	rr := do(t, h, http.MethodGet, "/api/options?produkt=Easy+Invisible&field=typ", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp optionsResponse
	decodeBody(t, rr, &resp)
	assert.Equal(t, uint64(1), resp.CatalogVersion)
	require.Len(t, resp.Options, 1)
	assert.Equal(t, []string{"10A", "10S"}, resp.Options[catalog.Typ].Available)
	assert.Empty(t, resp.Options[catalog.Typ].Unavailable)
	assert.Nil(t, resp.Product)
}

func TestOptions_SearchAndUnknownField(t *testing.T) {
	_, h := newTestServer(t, catalog.CascadeClear, catalog.MatchUnique)

	rr := do(t, h, http.MethodGet, "/api/options?laenge=40+cm&q=length", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp optionsResponse
	decodeBody(t, rr, &resp)
	assert.Empty(t, resp.Options[catalog.Produkt].Available)
	assert.Equal(t, []string{"Easy Length"}, resp.Options[catalog.Produkt].Unavailable)
	require.NotNil(t, resp.Product)
	assert.Equal(t, "1", resp.Product.ID)

	rr = do(t, h, http.MethodGet, "/api/options?field=preis", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSelection_ChangingProduktClearsStaleTyp(t *testing.T) {
	_, h := newTestServer(t, catalog.CascadeClear, catalog.MatchUnique)

	rr := do(t, h, http.MethodPost, "/api/selection", selectionRequest{
		Selection: catalog.Selection{catalog.Behandlung: "Einsetzen", catalog.Produkt: "Easy Invisible", catalog.Typ: "10S"},
		Field:     "produkt",
		Value:     "Easy Length",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp optionsResponse
	decodeBody(t, rr, &resp)
	assert.Equal(t, catalog.Selection{catalog.Behandlung: "Einsetzen", catalog.Produkt: "Easy Length"}, resp.Selection)
	require.NotNil(t, resp.Product)
	assert.Equal(t, "3", resp.Product.ID)
}

func TestSelection_KeepPolicyAndReset(t *testing.T) {
	_, h := newTestServer(t, catalog.CascadeKeep, catalog.MatchUnique)
	sel := catalog.Selection{catalog.Produkt: "Easy Invisible", catalog.Typ: "10S"}

	rr := do(t, h, http.MethodPost, "/api/selection", selectionRequest{Selection: sel, Field: "produkt", Value: "Easy Length"})
	require.Equal(t, http.StatusOK, rr.Code)
	var resp optionsResponse
	decodeBody(t, rr, &resp)
	assert.Equal(t, "10S", resp.Selection[catalog.Typ])
	assert.Nil(t, resp.Product)

	rr = do(t, h, http.MethodPost, "/api/selection", selectionRequest{Selection: sel, Reset: true})
	require.Equal(t, http.StatusOK, rr.Code)
	resp = optionsResponse{}
	decodeBody(t, rr, &resp)
	assert.Empty(t, resp.Selection)
	assert.Equal(t, []string{"Easy Invisible", "Easy Length"}, resp.Options[catalog.Produkt].Available)
}
