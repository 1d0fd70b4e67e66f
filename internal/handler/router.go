package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/vaultpass/passgen/internal/middleware"
	"github.com/vaultpass/passgen/internal/service"
)

// RouterConfig wires services into the HTTP API.
type RouterConfig struct {
	Generator *service.GeneratorService
	Export    *service.ExportService
	Auth      *service.AuthService

	JWTSecret      string
	RateLimitRPS   float64
	RateLimitBurst int

	// HistoryEnabled mounts GET /api/v1/exports.
	HistoryEnabled bool
}

// NewRouter builds the API router. ctx bounds background work such as rate limiter cleanup.
func NewRouter(ctx context.Context, cfg RouterConfig) http.Handler {
	genHandler := NewGeneratorHandler(cfg.Generator)
	exportHandler := NewExportHandler(cfg.Export)
	authHandler := NewAuthHandler(cfg.Auth)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/generate/batch", genHandler.HandleBatch)
		r.Post("/api/v1/strength", genHandler.HandleStrength)
		r.Post("/api/v1/export/{format}", exportHandler.HandleExport)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, 1, 5))
		r.Post("/api/v1/auth/token", authHandler.HandleToken)
	})

	if cfg.HistoryEnabled {
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Get("/api/v1/exports", exportHandler.HandleHistory)
		})
	}

	return r
}
