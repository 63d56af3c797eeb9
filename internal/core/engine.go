// ABOUTME: Search orchestrator and product ingestion for the vibe matcher
// ABOUTME: Validates, embeds, ranks, and records one metric per completed search
package core

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stylistiq/vibematch/internal/config"
	"github.com/stylistiq/vibematch/internal/models"
	"github.com/stylistiq/vibematch/internal/util"
)

// Embedder maps a text string to a fixed-length vector
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// ProductStore persists catalog products with their cached embeddings
type ProductStore interface {
	InsertProduct(ctx context.Context, p models.Product) error
	ListProducts(ctx context.Context) ([]models.Product, error)
	DeleteAllProducts(ctx context.Context) (int64, error)
}

// MetricsStore is append-only persistence of per-query metrics
type MetricsStore interface {
	AppendMetric(ctx context.Context, m models.QueryMetric) error
	RecentMetrics(ctx context.Context, limit int) ([]models.QueryMetric, error)
}

// SearchParams is the raw search input before validation. Nil Limit or
// Threshold means "not supplied" and takes the configured default;
// supplied values outside the allowed range are rejected, not clamped.
type SearchParams struct {
	Vibe      string
	Limit     *int
	Threshold *float64
}

// SearchResponse pairs the ranked results with the metric recorded for
// this search.
type SearchResponse struct {
	Results []models.SearchResult `json:"results"`
	Metrics models.QueryMetric    `json:"metrics"`
}

// SeedReport summarizes a bulk demo-catalog ingestion. Items succeed or
// fail independently; prior successes are never rolled back.
type SeedReport struct {
	Message  string   `json:"message"`
	Count    int      `json:"count"`
	Products []string `json:"products"`
	Failed   []string `json:"failed,omitempty"`
}

// Engine ties the embedding gateway, catalog store, and metrics store into
// the search and ingestion operations. It holds no state across calls.
type Engine struct {
	cfg      *config.Config
	embedder Embedder
	products ProductStore
	metrics  MetricsStore
}

// NewEngine creates an engine from its collaborators
func NewEngine(cfg *config.Config, embedder Embedder, products ProductStore, metrics MetricsStore) *Engine {
	return &Engine{
		cfg:      cfg,
		embedder: embedder,
		products: products,
		metrics:  metrics,
	}
}

// Search runs one vibe query end to end: validate, embed, fetch, rank,
// record a metric, return. Exactly one metric is recorded per completed
// search, whether or not it returned results. A failed embedding call fails
// the whole search and records nothing.
func (e *Engine) Search(ctx context.Context, params SearchParams) (*SearchResponse, error) {
	vibe := strings.TrimSpace(params.Vibe)
	if vibe == "" {
		return nil, fmt.Errorf("%w: vibe text is required", ErrInvalidQuery)
	}

	limit := e.cfg.DefaultLimit
	if params.Limit != nil {
		limit = *params.Limit
		if limit < 1 || limit > e.cfg.MaxLimit {
			return nil, fmt.Errorf("%w: limit must be 1-%d, got %d", ErrInvalidQuery, e.cfg.MaxLimit, limit)
		}
	}

	threshold := e.cfg.DefaultThreshold
	if params.Threshold != nil {
		threshold = *params.Threshold
		if threshold < 0 || threshold > 1 {
			return nil, fmt.Errorf("%w: threshold must be 0-1, got %f", ErrInvalidQuery, threshold)
		}
	}

	start := time.Now()

	queryVec, err := e.embedder.Embed(ctx, vibe)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}

	candidates, err := e.products.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	results := Rank(queryVec, candidates, limit, threshold)
	latency := roundLatency(time.Since(start))

	metric := models.QueryMetric{
		ID:            uuid.NewString(),
		Query:         vibe,
		ResultsCount:  len(results),
		LatencyMS:     latency,
		ThresholdUsed: threshold,
		Message:       searchMessage(results, len(candidates)),
		Timestamp:     time.Now().UTC(),
	}
	if len(results) > 0 {
		top := results[0].SimilarityScore
		metric.TopScore = &top
	}

	// Best effort: metric recording never fails a user-facing search
	if err := e.metrics.AppendMetric(ctx, metric); err != nil {
		log.Printf("warning: failed to record query metric: %v", err)
	}

	return &SearchResponse{Results: results, Metrics: metric}, nil
}

// CreateProduct ingests one product: embed the composite descriptive text,
// then persist. If embedding fails nothing is stored.
func (e *Engine) CreateProduct(ctx context.Context, draft models.ProductDraft) (*models.Product, error) {
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProduct, err)
	}

	vec, err := e.embedder.Embed(ctx, draft.EmbeddingText())
	if err != nil {
		return nil, fmt.Errorf("%w: embedding %q: %v", ErrIngestionFailed, draft.Name, err)
	}

	product := models.Product{
		ID:          uuid.NewString(),
		Name:        draft.Name,
		Description: draft.Description,
		VibeTags:    draft.VibeTags,
		Category:    draft.Category,
		ImageURL:    draft.ImageURL,
		Embedding:   vec,
		CreatedAt:   time.Now().UTC(),
	}

	if err := e.products.InsertProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("%w: storing %q: %v", ErrIngestionFailed, draft.Name, err)
	}

	return &product, nil
}

// SeedCatalog ingests the demo product set. Each item is independent: a
// failed item is retried with backoff, then reported, without rolling back
// items that already succeeded.
func (e *Engine) SeedCatalog(ctx context.Context) (*SeedReport, error) {
	report := &SeedReport{Products: []string{}}

	for _, draft := range SeedProducts() {
		var err error
		for attempt := 0; attempt <= e.cfg.MaxRetries; attempt++ {
			if attempt > 0 {
				time.Sleep(util.CalculateBackoff(e.cfg.RetryDelay, attempt))
			}
			if _, err = e.CreateProduct(ctx, draft); err == nil {
				break
			}
		}
		if err != nil {
			log.Printf("seeding %q failed after %d attempts: %v", draft.Name, e.cfg.MaxRetries+1, err)
			report.Failed = append(report.Failed, draft.Name)
			continue
		}
		report.Products = append(report.Products, draft.Name)
	}

	report.Count = len(report.Products)
	if len(report.Failed) == 0 {
		report.Message = "Products seeded successfully"
	} else {
		report.Message = fmt.Sprintf("Seeded %d products, %d failed", report.Count, len(report.Failed))
	}
	return report, nil
}

// ListProducts returns the full catalog
func (e *Engine) ListProducts(ctx context.Context) ([]models.Product, error) {
	return e.products.ListProducts(ctx)
}

// ClearCatalog deletes every product and reports how many were removed.
// Metrics are untouched.
func (e *Engine) ClearCatalog(ctx context.Context) (int64, error) {
	return e.products.DeleteAllProducts(ctx)
}

// RecentMetrics returns up to limit metrics, most recent first
func (e *Engine) RecentMetrics(ctx context.Context, limit int) ([]models.QueryMetric, error) {
	if limit <= 0 {
		limit = 50
	}
	return e.metrics.RecentMetrics(ctx, limit)
}

func searchMessage(results []models.SearchResult, candidateCount int) string {
	switch {
	case candidateCount == 0:
		return "No products found. Please add products first."
	case len(results) == 0:
		return "No matches above threshold. Try different vibes!"
	case results[0].SimilarityScore > 0.8:
		return "Good match found!"
	default:
		return "Matches found"
	}
}

func roundLatency(d time.Duration) float64 {
	ms := float64(d.Microseconds()) / 1000.0
	return math.Round(ms*100) / 100
}
