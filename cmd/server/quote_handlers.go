package main

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/Simplici0/kalkulator/internal/formula"
	"github.com/Simplici0/kalkulator/internal/pricing"
	"github.com/Simplici0/kalkulator/internal/settings"
)

// handleQuote is the full recompute for the calculator form: options for
// the selection, the matched product and the priced result.
func (s *server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req pricing.QuoteRequest
	if !s.decode(w, r, &req) {
		return
	}

	q := pricing.BuildQuote(s.catalog.Snapshot(), s.settings.Snapshot(), req, s.match)
	render.JSON(w, r, q)
}

type evaluateRequest struct {
	Template string             `json:"template"`
	Bindings map[string]float64 `json:"bindings"`
}

type evaluateResponse struct {
	Value        float64  `json:"value"`
	Error        string   `json:"error,omitempty"`
	Placeholders []string `json:"placeholders"`
}

// handleFormulaEvaluate evaluates a template for the settings preview.
// Without bindings the current settings constants are used with zero
// inputs. A failing template yields value 0 plus the reason.
func (s *server) handleFormulaEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if !s.decode(w, r, &req) {
		return
	}

	bindings := req.Bindings
	if bindings == nil {
		bindings = pricing.Bindings(pricing.Input{}, s.settings.Snapshot().Settings)
	}

	resp := evaluateResponse{Placeholders: formula.Placeholders(req.Template)}
	v, err := formula.Eval(req.Template, bindings)
	if err != nil {
		resp.Error = err.Error()
	} else {
		resp.Value = v
	}

	render.JSON(w, r, resp)
}

func (s *server) handleSettingsGet(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.settings.Snapshot())
}

// handleSettingsSave takes the raw form text so that non-numeric input is
// reported per field instead of as a JSON error.
func (s *server) handleSettingsSave(w http.ResponseWriter, r *http.Request) {
	const op = "settings.save"

	var form settings.Form
	if !s.decode(w, r, &form) {
		return
	}

	next, err := settings.ParseForm(form)
	if err != nil {
		s.fail(w, r, op, err)
		return
	}

	snap, err := s.settings.Save(r.Context(), next)
	if err != nil {
		s.fail(w, r, op, err)
		return
	}

	render.JSON(w, r, snap)
}
