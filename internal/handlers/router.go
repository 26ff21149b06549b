package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/product-catalog/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires the catalog endpoints and middleware
func NewRouter(products *ProductHandler, health *HealthHandler, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// The catalog is read-only, any origin may read it
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(NotFound(log))
	r.MethodNotAllowed(MethodNotAllowed(log))

	r.Get("/health", health.ServeHTTP)

	r.Get("/", products.ListProducts)
	r.Get("/products", products.ListProducts)
	r.Get("/products/", products.ListProducts)
	r.Get("/products/{productId}", products.GetProduct)

	return r
}
