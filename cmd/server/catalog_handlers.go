package main

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/Simplici0/kalkulator/internal/catalog"
	"github.com/Simplici0/kalkulator/internal/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type optionsResponse struct {
	CatalogVersion uint64                                `json:"catalogVersion"`
	Selection      catalog.Selection                     `json:"selection"`
	Options        map[catalog.Attribute]catalog.Options `json:"options"`
	Product        *catalog.Product                      `json:"product,omitempty"`
}

// handleOptions serves the dropdown contents for the selection given in the
// query string. q narrows every list by substring; field restricts the
// response to one attribute.
func (s *server) handleOptions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	sel := selectionFromQuery(query.Get)

	fields := catalog.Attributes
	if raw := query.Get("field"); raw != "" {
		field, err := catalog.ParseAttribute(raw)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, errorResponse{Error: err.Error(), Field: "field"})
			return
		}
		fields = []catalog.Attribute{field}
	}

	snap := s.catalog.Snapshot()
	resp := optionsResponse{
		CatalogVersion: snap.Version,
		Selection:      sel,
		Options:        make(map[catalog.Attribute]catalog.Options, len(fields)),
	}
	for _, field := range fields {
		resp.Options[field] = catalog.Search(catalog.FilteredOptions(snap.Products, field, sel), query.Get("q"))
	}
	if p, ok := catalog.Match(snap.Products, sel, s.match); ok {
		resp.Product = &p
	}

	render.JSON(w, r, resp)
}

type selectionRequest struct {
	Selection catalog.Selection `json:"selection"`
	Field     string            `json:"field"`
	Value     string            `json:"value"`
	Reset     bool              `json:"reset"`
}

// handleSelection applies one dropdown change and returns the resulting
// selection with fresh options.
func (s *server) handleSelection(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if !s.decode(w, r, &req) {
		return
	}

	snap := s.catalog.Snapshot()
	sel := req.Selection.Clone()
	switch {
	case req.Reset:
		sel = catalog.Reset()
	case req.Field != "":
		field, err := catalog.ParseAttribute(req.Field)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, errorResponse{Error: err.Error(), Field: "field"})
			return
		}
		sel = sel.Choose(snap.Products, field, strings.TrimSpace(req.Value), s.cascade)
	}

	resp := optionsResponse{
		CatalogVersion: snap.Version,
		Selection:      sel,
		Options:        catalog.AllOptions(snap.Products, sel),
	}
	if p, ok := catalog.Match(snap.Products, sel, s.match); ok {
		resp.Product = &p
	}
	render.JSON(w, r, resp)
}

type productsResponse struct {
	Version  uint64            `json:"version"`
	Products []catalog.Product `json:"products"`
}

func (s *server) handleProductsList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	snap := s.catalog.Snapshot()

	render.JSON(w, r, productsResponse{
		Version: snap.Version,
		Products: catalog.Filter(snap.Products, catalog.ProductFilter{
			Behandlung: query.Get("behandlung"),
			Produkt:    query.Get("produkt"),
			Typ:        query.Get("typ"),
			Laenge:     query.Get("laenge"),
			ArtikelID:  query.Get("artikelId"),
			Preis:      query.Get("preis"),
		}),
	})
}

func (s *server) handleProductCreate(w http.ResponseWriter, r *http.Request) {
	const op = "products.create"

	var p catalog.Product
	if !s.decode(w, r, &p) {
		return
	}

	created, err := s.catalog.Add(r.Context(), p)
	if err != nil {
		s.fail(w, r, op, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}

func (s *server) handleProductUpdate(w http.ResponseWriter, r *http.Request) {
	const op = "products.update"

	var p catalog.Product
	if !s.decode(w, r, &p) {
		return
	}

	updated, err := s.catalog.Update(r.Context(), chi.URLParam(r, "id"), p)
	if err != nil {
		s.fail(w, r, op, err)
		return
	}

	render.JSON(w, r, updated)
}

func (s *server) handleProductDelete(w http.ResponseWriter, r *http.Request) {
	const op = "products.delete"

	if err := s.catalog.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, op, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type importRow struct {
	Produkt   string `json:"produkt"`
	Typ       string `json:"typ"`
	Laenge    string `json:"laenge"`
	ArtikelID string `json:"artikelId"`
	Preis     string `json:"preis"`
	Info      string `json:"info"`
}

type importRequest struct {
	Behandlung string      `json:"behandlung"`
	Rows       []importRow `json:"rows"`
}

type importResponse struct {
	Imported int               `json:"imported"`
	Skipped  int               `json:"skipped"`
	Version  uint64            `json:"version"`
	Products []catalog.Product `json:"products"`
}

// handleProductsImport appends a batch of products sharing one behandlung.
// The body is either JSON or an xlsx workbook in the export layout, in which
// case behandlung comes from the query string.
func (s *server) handleProductsImport(w http.ResponseWriter, r *http.Request) {
	const op = "products.import"

	var (
		behandlung string
		rows       []catalog.Product
		total      int
	)

	if strings.HasPrefix(r.Header.Get("Content-Type"), xlsxContentType) {
		behandlung = r.URL.Query().Get("behandlung")
		parsed, skipped, err := export.ReadCatalog(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			respondError(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		rows, total = parsed, len(parsed)+skipped
	} else {
		var req importRequest
		if !s.decode(w, r, &req) {
			return
		}
		behandlung, total = req.Behandlung, len(req.Rows)
		for _, row := range req.Rows {
			preis, err := catalog.ParsePrice(row.Preis)
			if err != nil {
				continue
			}
			rows = append(rows, catalog.Product{
				Produkt:   row.Produkt,
				Typ:       row.Typ,
				Laenge:    row.Laenge,
				ArtikelID: row.ArtikelID,
				Preis:     preis,
				Info:      row.Info,
			})
		}
	}

	imported, err := s.catalog.Import(r.Context(), behandlung, rows)
	if err != nil {
		s.fail(w, r, op, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, importResponse{
		Imported: len(imported),
		Skipped:  total - len(imported),
		Version:  s.catalog.Snapshot().Version,
		Products: imported,
	})
}

func (s *server) handleProductsExport(w http.ResponseWriter, r *http.Request) {
	const op = "products.export"

	var buf bytes.Buffer
	if err := export.WriteCatalog(&buf, s.catalog.Snapshot().Products); err != nil {
		s.fail(w, r, op, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="produkte.xlsx"`)
	_, _ = buf.WriteTo(w)
}

func selectionFromQuery(get func(string) string) catalog.Selection {
	sel := catalog.Selection{}
	for _, a := range catalog.Attributes {
		if v := strings.TrimSpace(get(string(a))); v != "" {
			sel[a] = v
		}
	}
	return sel
}
