// ABOUTME: Similarity ranker: scores, filters, and orders catalog candidates
// ABOUTME: Full-scan cosine ranking with threshold filter and stable top-k
package core

import (
	"math"

	"github.com/stylistiq/vibematch/internal/models"
	"github.com/stylistiq/vibematch/internal/vecmath"
)

// Rank scores every candidate against queryVec, drops scores below
// threshold, and returns the top limit results ordered by score descending.
// Equal scores keep the candidates' input order, so identical inputs always
// produce identical output. An empty return is a valid outcome, not an
// error: it means nothing matched the vibe strongly enough.
//
// Every candidate is scored in one pass. The catalog is a small curated
// set, so a full scan beats maintaining an index.
func Rank(queryVec []float64, candidates []models.Product, limit int, threshold float64) []models.SearchResult {
	if len(candidates) == 0 {
		return []models.SearchResult{}
	}

	kept := make([]models.Product, 0, len(candidates))
	scores := make([]float64, 0, len(candidates))
	for _, p := range candidates {
		if len(p.Embedding) == 0 {
			continue
		}
		// Filter on the raw similarity; rounding is for display only
		score := vecmath.CosineSimilarity(queryVec, p.Embedding)
		if score < threshold {
			continue
		}
		kept = append(kept, p)
		scores = append(scores, score)
	}

	results := make([]models.SearchResult, 0, limit)
	for _, i := range vecmath.TopK(scores, limit) {
		results = append(results, models.ResultFromProduct(kept[i], roundScore(scores[i])))
	}
	return results
}

// roundScore keeps similarity scores at 4 decimal places
func roundScore(s float64) float64 {
	return math.Round(s*10000) / 10000
}
