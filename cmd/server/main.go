// ABOUTME: Standalone HTTP server entry point
// ABOUTME: Wires config, storage, embeddings, and the API router
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/stylistiq/vibematch/internal/api"
	"github.com/stylistiq/vibematch/internal/config"
	"github.com/stylistiq/vibematch/internal/core"
	"github.com/stylistiq/vibematch/internal/embedding"
	"github.com/stylistiq/vibematch/internal/storage/sqlite"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	embedder, err := embedding.NewClient(embedding.ClientConfig{
		APIKey:    cfg.OpenAIKey,
		Model:     cfg.EmbeddingModel,
		Dimension: cfg.VectorDim,
		Timeout:   cfg.EmbedTimeout,
	})
	if err != nil {
		log.Fatalf("failed to create embedding client: %v", err)
	}

	engine := core.NewEngine(cfg, embedder, sqlite.NewProductStore(db), sqlite.NewMetricsStore(db))

	handler := api.NewHandler(engine)
	router := api.NewRouter(handler, cfg.CORSOrigins)

	log.Printf("Vibe Matcher API %s listening on :%s", api.Version, cfg.Port)
	if err := api.Serve(":"+cfg.Port, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
