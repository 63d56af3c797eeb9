// ABOUTME: Tests for Product and ProductDraft models
// ABOUTME: Verifies draft validation, embedding text assembly, and dimension checks
package models

import (
	"strings"
	"testing"
)

func TestProductDraft_Validate(t *testing.T) {
	tests := []struct {
		name        string
		draft       ProductDraft
		wantErr     bool
		errContains string
	}{
		{
			name: "valid draft",
			draft: ProductDraft{
				Name:        "Boho Maxi Dress",
				Description: "Flowy, earthy-toned maxi dress",
				VibeTags:    []string{"boho", "festival"},
				Category:    "dresses",
			},
			wantErr: false,
		},
		{
			name: "missing name",
			draft: ProductDraft{
				Description: "Flowy dress",
				Category:    "dresses",
			},
			wantErr:     true,
			errContains: "name",
		},
		{
			name: "whitespace name",
			draft: ProductDraft{
				Name:        "   ",
				Description: "Flowy dress",
				Category:    "dresses",
			},
			wantErr:     true,
			errContains: "name",
		},
		{
			name: "missing description",
			draft: ProductDraft{
				Name:     "Boho Maxi Dress",
				Category: "dresses",
			},
			wantErr:     true,
			errContains: "description",
		},
		{
			name: "missing category",
			draft: ProductDraft{
				Name:        "Boho Maxi Dress",
				Description: "Flowy dress",
			},
			wantErr:     true,
			errContains: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("Validate() error = %q, want substring %q", err, tt.errContains)
				}
			} else if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestProductDraft_EmbeddingText(t *testing.T) {
	draft := ProductDraft{
		Name:        "Cozy Knit Sweater",
		Description: "Oversized chunky knit sweater in warm cream.",
		VibeTags:    []string{"cozy", "comfort", "casual"},
		Category:    "tops",
	}

	got := draft.EmbeddingText()
	want := "Cozy Knit Sweater. Oversized chunky knit sweater in warm cream.. Vibes: cozy, comfort, casual"
	if got != want {
		t.Errorf("EmbeddingText() = %q, want %q", got, want)
	}
}

func TestProduct_ValidateEmbedding(t *testing.T) {
	tests := []struct {
		name        string
		product     Product
		expectedDim int
		wantErr     bool
		errContains string
	}{
		{
			name:        "valid dimension",
			product:     Product{ID: "p1", Embedding: []float64{0.1, 0.2, 0.3, 0.4}},
			expectedDim: 4,
			wantErr:     false,
		},
		{
			name:        "empty vector",
			product:     Product{ID: "p2", Embedding: []float64{}},
			expectedDim: 4,
			wantErr:     true,
			errContains: "cannot be empty",
		},
		{
			name:        "nil vector",
			product:     Product{ID: "p3"},
			expectedDim: 4,
			wantErr:     true,
			errContains: "cannot be empty",
		},
		{
			name:        "dimension mismatch",
			product:     Product{ID: "p4", Embedding: []float64{0.1, 0.2}},
			expectedDim: 4,
			wantErr:     true,
			errContains: "dimension mismatch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.ValidateEmbedding(tt.expectedDim)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ValidateEmbedding() expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("ValidateEmbedding() error = %q, want substring %q", err, tt.errContains)
				}
			} else if err != nil {
				t.Errorf("ValidateEmbedding() unexpected error: %v", err)
			}
		})
	}
}

func TestResultFromProduct(t *testing.T) {
	p := Product{
		ID:          "p1",
		Name:        "Urban Leather Jacket",
		Description: "Sleek black leather jacket",
		VibeTags:    []string{"urban", "edgy"},
		Category:    "outerwear",
		ImageURL:    "https://example.com/jacket.jpg",
		Embedding:   []float64{1, 0},
	}

	r := ResultFromProduct(p, 0.92)

	if r.ID != p.ID || r.Name != p.Name || r.Category != p.Category {
		t.Errorf("ResultFromProduct() dropped product fields: %+v", r)
	}
	if r.SimilarityScore != 0.92 {
		t.Errorf("SimilarityScore = %v, want 0.92", r.SimilarityScore)
	}
}
