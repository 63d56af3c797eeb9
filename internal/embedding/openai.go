// ABOUTME: Embedding gateway over the OpenAI embeddings API
// ABOUTME: Normalizes every provider failure into ErrUnavailable
package embedding

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ErrUnavailable is returned for any provider failure: transport errors,
// auth errors, rate limits, timeouts, or malformed responses.
var ErrUnavailable = errors.New("embedding provider unavailable")

// ClientConfig holds configuration for the embedding client
type ClientConfig struct {
	APIKey    string
	Model     string
	Dimension int
	Timeout   time.Duration
	// BaseURL overrides the provider endpoint; used by tests.
	BaseURL string
}

// Client generates embeddings through the OpenAI API.
//
// The client is deliberately single-shot: a call makes exactly one provider
// round trip under Timeout. Ranking against a stale or partial query vector
// would corrupt results silently, so retry policy belongs to callers that
// can afford it (the catalog seeder retries; search does not).
type Client struct {
	api       *openai.Client
	model     openai.EmbeddingModel
	dimension int
	timeout   time.Duration
}

// NewClient creates an embedding client from the given configuration
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	return &Client{
		api:       openai.NewClientWithConfig(apiCfg),
		model:     openai.EmbeddingModel(cfg.Model),
		dimension: cfg.Dimension,
		timeout:   cfg.Timeout,
	}, nil
}

// Embed returns the embedding vector for text. The caller must reject empty
// input before calling; embedding an empty string is undefined.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: []string{text},
		Model: c.model,
	})
	if err != nil {
		log.Printf("embedding call failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(resp.Data) == 0 {
		log.Printf("embedding call returned no data")
		return nil, fmt.Errorf("%w: no embeddings returned", ErrUnavailable)
	}

	vec32 := resp.Data[0].Embedding
	if c.dimension > 0 && len(vec32) != c.dimension {
		log.Printf("embedding call returned %d dims, expected %d", len(vec32), c.dimension)
		return nil, fmt.Errorf("%w: unexpected dimension %d (want %d)", ErrUnavailable, len(vec32), c.dimension)
	}

	vec := make([]float64, len(vec32))
	for i, v := range vec32 {
		vec[i] = float64(v)
	}
	return vec, nil
}
