// ABOUTME: Sentinel errors for the vibe matching engine
// ABOUTME: Callers map these to transport-level failures with errors.Is
package core

import "errors"

var (
	// ErrInvalidQuery means the caller's search input failed validation:
	// empty vibe text, or limit/threshold outside the allowed range.
	// Rejected before any embedding call.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidProduct means a product draft failed validation.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrSearchUnavailable means the embedding provider failed, so the
	// search could not complete. No partial results are produced.
	ErrSearchUnavailable = errors.New("search unavailable")

	// ErrIngestionFailed means a product could not be created. The product
	// is never stored without its embedding.
	ErrIngestionFailed = errors.New("ingestion failed")
)
