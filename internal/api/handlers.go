// ABOUTME: HTTP handlers for the vibe matcher JSON API
// ABOUTME: Maps engine errors to status codes and mirrors the /api wire shapes
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/stylistiq/vibematch/internal/core"
	"github.com/stylistiq/vibematch/internal/models"
)

// Version is reported by the root info endpoint
const Version = "1.0.0"

// Engine is the search/catalog surface the handlers need
type Engine interface {
	Search(ctx context.Context, params core.SearchParams) (*core.SearchResponse, error)
	CreateProduct(ctx context.Context, draft models.ProductDraft) (*models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	SeedCatalog(ctx context.Context) (*core.SeedReport, error)
	ClearCatalog(ctx context.Context) (int64, error)
	RecentMetrics(ctx context.Context, limit int) ([]models.QueryMetric, error)
}

// Handler holds the HTTP handlers for the API
type Handler struct {
	engine Engine
}

// NewHandler creates a Handler backed by the given engine
func NewHandler(engine Engine) *Handler {
	return &Handler{engine: engine}
}

// searchRequest is the /api/search body. Limit and threshold are pointers
// so "absent" takes the configured default while explicit out-of-range
// values are rejected.
type searchRequest struct {
	Vibe      string   `json:"vibe"`
	Limit     *int     `json:"limit"`
	Threshold *float64 `json:"threshold"`
}

// Root reports service name and version
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Vibe Matcher API",
		"version": Version,
	})
}

// Search runs a vibe query and returns ranked results plus metrics
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.engine.Search(r.Context(), core.SearchParams{
		Vibe:      req.Vibe,
		Limit:     req.Limit,
		Threshold: req.Threshold,
	})
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidQuery):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, core.ErrSearchUnavailable):
			writeError(w, http.StatusServiceUnavailable, err.Error())
		default:
			log.Printf("search failed: %v", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// CreateProduct ingests one product with a server-side embedding
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var draft models.ProductDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.engine.CreateProduct(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidProduct):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("product creation failed: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// ListProducts returns the full catalog
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.engine.ListProducts(r.Context())
	if err != nil {
		log.Printf("listing products failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// SeedCatalog ingests the demo product set
func (h *Handler) SeedCatalog(w http.ResponseWriter, r *http.Request) {
	report, err := h.engine.SeedCatalog(r.Context())
	if err != nil {
		log.Printf("seeding failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// DeleteAllProducts clears the catalog
func (h *Handler) DeleteAllProducts(w http.ResponseWriter, r *http.Request) {
	n, err := h.engine.ClearCatalog(r.Context())
	if err != nil {
		log.Printf("clearing catalog failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"deleted_count": n})
}

// ListMetrics returns recent search metrics, most recent first
func (h *Handler) ListMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.engine.RecentMetrics(r.Context(), 50)
	if err != nil {
		log.Printf("listing metrics failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if metrics == nil {
		metrics = []models.QueryMetric{}
	}
	writeJSON(w, http.StatusOK, metrics)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
