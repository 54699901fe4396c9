package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/Simplici0/kalkulator/internal/config"
)

func (s *server) routes(cfg config.Config) http.Handler {
	r := chi.NewRouter()

	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}).Handler)
	}

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/options", s.handleOptions)
		r.Post("/selection", s.handleSelection)
		r.Post("/quote", s.handleQuote)
		r.Post("/formula/evaluate", s.handleFormulaEvaluate)

		r.Get("/products", s.handleProductsList)
		r.Post("/products", s.handleProductCreate)
		r.Post("/products/import", s.handleProductsImport)
		r.Get("/products/export.xlsx", s.handleProductsExport)
		r.Put("/products/{id}", s.handleProductUpdate)
		r.Delete("/products/{id}", s.handleProductDelete)

		r.Get("/settings", s.handleSettingsGet)
		r.Put("/settings", s.handleSettingsSave)
	})

	return r
}
