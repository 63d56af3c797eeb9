// ABOUTME: SQLite schema for the vibe matcher catalog and metrics
// ABOUTME: Creates product and query metric tables with indexes
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Catalog products with cached embedding vectors
CREATE TABLE IF NOT EXISTS products (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    vibe_tags TEXT NOT NULL,
    category TEXT NOT NULL,
    image_url TEXT,
    embedding BLOB NOT NULL,
    created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_products_created ON products(created_at);

-- Append-only per-search metrics
CREATE TABLE IF NOT EXISTS query_metrics (
    id TEXT PRIMARY KEY,
    query TEXT NOT NULL,
    results_count INTEGER NOT NULL,
    latency_ms REAL NOT NULL,
    top_score REAL,
    threshold_used REAL NOT NULL,
    message TEXT NOT NULL,
    created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_query_metrics_created ON query_metrics(created_at DESC);
`
