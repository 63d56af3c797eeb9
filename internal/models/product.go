// ABOUTME: Product model for the vibe-matching catalog
// ABOUTME: Defines Product, ProductDraft, and embedding-source text assembly
package models

import (
	"fmt"
	"strings"
	"time"
)

// Product is a catalog item with its cached embedding vector.
// The embedding is computed once at creation and never leaves the process
// boundary, so it is excluded from JSON.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	VibeTags    []string  `json:"vibe_tags"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url,omitempty"`
	Embedding   []float64 `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProductDraft carries the caller-supplied fields of a new product.
// ID, embedding, and creation time are assigned during ingestion.
type ProductDraft struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	VibeTags    []string `json:"vibe_tags"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url,omitempty"`
}

// Validate checks that the draft has the required descriptive fields
func (d ProductDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("product name is required")
	}
	if strings.TrimSpace(d.Description) == "" {
		return fmt.Errorf("product description is required")
	}
	if strings.TrimSpace(d.Category) == "" {
		return fmt.Errorf("product category is required")
	}
	return nil
}

// EmbeddingText builds the composite text the product embedding is computed
// from. Name, description, and vibe tags together carry more signal than the
// name alone.
func (d ProductDraft) EmbeddingText() string {
	return fmt.Sprintf("%s. %s. Vibes: %s", d.Name, d.Description, strings.Join(d.VibeTags, ", "))
}

// ValidateEmbedding checks that the product carries a vector of the
// provider's fixed dimensionality. A product must never be persisted
// without one.
func (p Product) ValidateEmbedding(expectedDim int) error {
	if len(p.Embedding) == 0 {
		return fmt.Errorf("product %s: embedding cannot be empty", p.ID)
	}
	if len(p.Embedding) != expectedDim {
		return fmt.Errorf("product %s: embedding dimension mismatch: expected %d, got %d",
			p.ID, expectedDim, len(p.Embedding))
	}
	return nil
}
