package dashboard

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/Lixing-Zhang/kart-challenge/product-catalog/internal/models"
	"github.com/gocarina/gocsv"
)

const (
	MsgFetchFailed = "Failed to fetch data from API. Check if the catalog service is running."
	MsgUnreachable = "Could not connect to the catalog service. Make sure it's running."
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html"))

// productLister is the catalog read the dashboard depends on
type productLister interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// Handler renders the dashboard page and the CSV export
type Handler struct {
	catalog productLister
	logger  *slog.Logger
}

// NewHandler creates a new dashboard handler
func NewHandler(catalog productLister, logger *slog.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

type pageData struct {
	Error      string
	Products   []models.Product
	Filtered   []models.Product
	Categories []string
	Selected   string
	ExportURL  string
}

// Page handles GET /
// Fetches the catalog once and renders the full and the category-filtered tables.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	selected := selectedCategory(r)
	data := pageData{Selected: selected}
	status := http.StatusOK

	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		data.Error = h.errorMessage(err)
		status = http.StatusBadGateway
	} else {
		data.Products = products
		data.Filtered = Filter(products, selected)
		data.Categories = append([]string{AllCategories}, Categories(products)...)
		data.ExportURL = "/export.csv?" + url.Values{"category": {selected}}.Encode()
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		h.logger.Error("failed to render dashboard", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write dashboard", "error", err)
	}
}

// ExportCSV handles GET /export.csv
// Writes the category-filtered rows as CSV.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		http.Error(w, h.errorMessage(err), http.StatusBadGateway)
		return
	}

	filtered := Filter(products, selectedCategory(r))

	var buf bytes.Buffer
	if err := gocsv.Marshal(filtered, &buf); err != nil {
		h.logger.Error("failed to encode CSV export", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="products.csv"`)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write CSV export", "error", err)
	}
}

func (h *Handler) errorMessage(err error) string {
	if errors.Is(err, ErrUnreachable) {
		h.logger.Error("catalog service unreachable", "error", err)
		return MsgUnreachable
	}

	h.logger.Error("failed to fetch products", "error", err)
	return MsgFetchFailed
}

func selectedCategory(r *http.Request) string {
	if category := r.URL.Query().Get("category"); category != "" {
		return category
	}
	return AllCategories
}
