package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Lixing-Zhang/kart-challenge/product-catalog/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/product-catalog/internal/service"
	"github.com/go-chi/chi/v5"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ListProducts handles GET / and GET /products/
// Returns every product ordered by id, or an empty array for an empty store.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.service.ListProducts(ctx)
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal Server Error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}

// GetProduct handles GET /products/{productId}
// - 200: the product
// - 400: id is not an integer
// - 404: Product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "productId")

	id, err := strconv.ParseInt(productID, 10, 64)
	if err != nil {
		h.logger.Warn("invalid product ID format", "productId", productID, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid product ID", h.logger)
		return
	}

	product, err := h.service.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			h.logger.Info("product not found", "productId", id)
			WriteError(w, http.StatusNotFound, "Product not found", h.logger)
			return
		}

		h.logger.Error("failed to get product", "productId", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal Server Error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}
