// ABOUTME: Query metric persistence, append-only and time-ordered
// ABOUTME: Recent-first reads back the search history view
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stylistiq/vibematch/internal/models"
)

// MetricsStore handles per-search metric persistence
type MetricsStore struct {
	db *DB
}

// NewMetricsStore creates a new MetricsStore
func NewMetricsStore(db *DB) *MetricsStore {
	return &MetricsStore{db: db}
}

// AppendMetric records one search metric. Metrics are immutable once written.
func (s *MetricsStore) AppendMetric(ctx context.Context, m models.QueryMetric) error {
	var topScore sql.NullFloat64
	if m.TopScore != nil {
		topScore = sql.NullFloat64{Float64: *m.TopScore, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO query_metrics (id, query, results_count, latency_ms, top_score, threshold_used, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Query, m.ResultsCount, m.LatencyMS, topScore, m.ThresholdUsed, m.Message, m.Timestamp)
	if err != nil {
		return fmt.Errorf("appending metric: %w", err)
	}
	return nil
}

// RecentMetrics returns up to limit metrics, most recent first
func (s *MetricsStore) RecentMetrics(ctx context.Context, limit int) ([]models.QueryMetric, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, query, results_count, latency_ms, top_score, threshold_used, message, created_at
		FROM query_metrics
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing metrics: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var metrics []models.QueryMetric
	for rows.Next() {
		var (
			m        models.QueryMetric
			topScore sql.NullFloat64
		)
		if err := rows.Scan(&m.ID, &m.Query, &m.ResultsCount, &m.LatencyMS, &topScore, &m.ThresholdUsed, &m.Message, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning metric: %w", err)
		}
		if topScore.Valid {
			v := topScore.Float64
			m.TopScore = &v
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}
