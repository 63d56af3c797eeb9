// ABOUTME: Search result model returned from similarity ranking
// ABOUTME: Pairs product fields with the cosine similarity score
package models

// SearchResult is one ranked match. Constructed per search, never persisted.
type SearchResult struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	VibeTags        []string `json:"vibe_tags"`
	Category        string   `json:"category"`
	ImageURL        string   `json:"image_url,omitempty"`
	SimilarityScore float64  `json:"similarity_score"`
}

// ResultFromProduct builds a SearchResult from a product and its score
func ResultFromProduct(p Product, score float64) SearchResult {
	return SearchResult{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		VibeTags:        p.VibeTags,
		Category:        p.Category,
		ImageURL:        p.ImageURL,
		SimilarityScore: score,
	}
}
