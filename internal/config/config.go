// ABOUTME: Centralized configuration for the vibe matching service
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the vibe matching service
type Config struct {
	// OpenAI settings
	OpenAIKey      string
	EmbeddingModel string
	VectorDim      int
	EmbedTimeout   time.Duration

	// Seeder retry settings
	MaxRetries int
	RetryDelay time.Duration

	// Storage settings
	DBPath string

	// Search settings
	DefaultLimit     int
	MaxLimit         int
	DefaultThreshold float64

	// HTTP settings
	Port        string
	CORSOrigins []string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		EmbeddingModel:   getEnv("VIBEMATCH_EMBEDDING_MODEL", "text-embedding-3-small"),
		VectorDim:        getEnvInt("VIBEMATCH_VECTOR_DIM", 1536),
		EmbedTimeout:     getEnvDuration("VIBEMATCH_EMBED_TIMEOUT", 30*time.Second),
		MaxRetries:       getEnvInt("VIBEMATCH_MAX_RETRIES", 3),
		RetryDelay:       getEnvDuration("VIBEMATCH_RETRY_DELAY", 2*time.Second),
		DBPath:           getEnv("VIBEMATCH_DB", DefaultDBPath()),
		DefaultLimit:     getEnvInt("VIBEMATCH_DEFAULT_LIMIT", 3),
		MaxLimit:         getEnvInt("VIBEMATCH_MAX_LIMIT", 10),
		DefaultThreshold: getEnvFloat("VIBEMATCH_DEFAULT_THRESHOLD", 0.7),
		Port:             getEnv("PORT", "8080"),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "*")),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.DefaultThreshold < 0 || c.DefaultThreshold > 1 {
		return fmt.Errorf("VIBEMATCH_DEFAULT_THRESHOLD must be 0-1, got %f", c.DefaultThreshold)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("VIBEMATCH_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("VIBEMATCH_RETRY_DELAY must not be negative, got %s", c.RetryDelay)
	}
	if c.DefaultLimit < 1 || c.MaxLimit < c.DefaultLimit {
		return fmt.Errorf("limit bounds invalid: default %d, max %d", c.DefaultLimit, c.MaxLimit)
	}
	if c.VectorDim <= 0 {
		return fmt.Errorf("VIBEMATCH_VECTOR_DIM must be positive, got %d", c.VectorDim)
	}
	return nil
}

// DefaultDataDir returns the default data directory following the XDG spec.
// Respects XDG_DATA_HOME environment variable override for testing.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".local/share/vibematch"
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataHome, "vibematch")
}

// DefaultDBPath returns the default database file path
func DefaultDBPath() string {
	return filepath.Join(DefaultDataDir(), "vibematch.db")
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
