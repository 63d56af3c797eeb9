// ABOUTME: Product persistence for the catalog store
// ABOUTME: Stores embedding vectors as little-endian float64 BLOBs
package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"

	"github.com/stylistiq/vibematch/internal/models"
)

// ProductStore handles product persistence
type ProductStore struct {
	db *DB
}

// NewProductStore creates a new ProductStore
func NewProductStore(db *DB) *ProductStore {
	return &ProductStore{db: db}
}

// InsertProduct appends a product with its cached embedding. The embedding
// must be present; products are never stored without one.
func (s *ProductStore) InsertProduct(ctx context.Context, p models.Product) error {
	if len(p.Embedding) == 0 {
		return fmt.Errorf("product %s has no embedding", p.ID)
	}

	tags, err := json.Marshal(p.VibeTags)
	if err != nil {
		return fmt.Errorf("marshaling vibe tags: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO products (id, name, description, vibe_tags, category, image_url, embedding, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.Description, string(tags), p.Category, nullString(p.ImageURL), vectorToBlob(p.Embedding), p.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting product %s: %w", p.ID, err)
	}
	return nil
}

// ListProducts returns all products with their embeddings, oldest first
func (s *ProductStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, vibe_tags, category, image_url, embedding, created_at
		FROM products
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var products []models.Product
	for rows.Next() {
		var (
			p        models.Product
			tags     string
			imageURL sql.NullString
			blob     []byte
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &tags, &p.Category, &imageURL, &blob, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		if err := json.Unmarshal([]byte(tags), &p.VibeTags); err != nil {
			return nil, fmt.Errorf("unmarshaling vibe tags for %s: %w", p.ID, err)
		}
		p.ImageURL = imageURL.String
		p.Embedding = blobToVector(blob)
		products = append(products, p)
	}
	return products, rows.Err()
}

// DeleteAllProducts clears the catalog and reports how many rows went away
func (s *ProductStore) DeleteAllProducts(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM products`)
	if err != nil {
		return 0, fmt.Errorf("deleting products: %w", err)
	}
	return res.RowsAffected()
}

// vectorToBlob converts a float64 slice to a binary blob
func vectorToBlob(vector []float64) []byte {
	blob := make([]byte, len(vector)*8)
	for i, v := range vector {
		binary.LittleEndian.PutUint64(blob[i*8:], math.Float64bits(v))
	}
	return blob
}

// blobToVector converts a binary blob to a float64 slice
func blobToVector(blob []byte) []float64 {
	count := len(blob) / 8
	vector := make([]float64, count)
	for i := 0; i < count; i++ {
		bits := binary.LittleEndian.Uint64(blob[i*8:])
		vector[i] = math.Float64frombits(bits)
	}
	return vector
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
