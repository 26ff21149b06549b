package dashboard

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/product-catalog/internal/handlers"
	"github.com/Lixing-Zhang/kart-challenge/product-catalog/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the dashboard pages and middleware
func NewRouter(h *Handler, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/health", handlers.NewHealthHandler(nil, log).ServeHTTP)
	r.Get("/", h.Page)
	r.Get("/export.csv", h.ExportCSV)

	return r
}
