// ABOUTME: Pure vector math for similarity ranking
// ABOUTME: Cosine similarity and stable top-k index selection
package vecmath

import (
	"fmt"
	"math"
	"sort"
)

// CosineSimilarity returns dot(a,b) / (|a|*|b|) in [-1, 1].
//
// Mismatched lengths panic: every stored vector shares the provider's fixed
// dimensionality, so a mismatch here means the catalog is corrupt (e.g. the
// provider's dimensionality changed under cached embeddings) and ranking
// against it would silently return garbage.
//
// A zero-magnitude vector has no direction; similarity is defined as 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("vecmath: dimension mismatch: %d vs %d", len(a), len(b)))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// TopK returns the indices of the k highest scores, ordered by score
// descending. Equal scores keep their original order, so repeated calls
// with identical input produce identical output. k larger than len(scores)
// returns all indices; k must be >= 0.
func TopK(scores []float64, k int) []int {
	if k < 0 {
		panic(fmt.Sprintf("vecmath: negative k: %d", k))
	}

	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(i, j int) bool {
		return scores[idx[i]] > scores[idx[j]]
	})

	if k < len(idx) {
		idx = idx[:k]
	}
	return idx
}
