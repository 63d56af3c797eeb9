// ABOUTME: Shared helpers for CLI commands
// ABOUTME: Engine construction, output formatting, and string utilities
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/joho/godotenv"

	"github.com/stylistiq/vibematch/internal/config"
	"github.com/stylistiq/vibematch/internal/core"
	"github.com/stylistiq/vibematch/internal/embedding"
	"github.com/stylistiq/vibematch/internal/storage/sqlite"
)

// loadEngine builds a fully wired engine from environment configuration.
// The returned cleanup function closes the underlying database.
func loadEngine() (*core.Engine, *config.Config, func(), error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	embedder, err := embedding.NewClient(embedding.ClientConfig{
		APIKey:    cfg.OpenAIKey,
		Model:     cfg.EmbeddingModel,
		Dimension: cfg.VectorDim,
		Timeout:   cfg.EmbedTimeout,
	})
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, fmt.Errorf("failed to create embedding client: %w", err)
	}

	engine := core.NewEngine(cfg, embedder, sqlite.NewProductStore(db), sqlite.NewMetricsStore(db))

	cleanup := func() {
		_ = db.Close()
	}
	return engine, cfg, cleanup, nil
}

// printJSON writes v as indented JSON to w
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// truncate shortens s to max characters, appending "..." when cut
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// info prints to the command's output unless --quiet is set
func info(w io.Writer, format string, args ...any) {
	if quiet {
		return
	}
	fmt.Fprintf(w, format, args...)
}
