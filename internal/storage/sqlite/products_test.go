// ABOUTME: Tests for product persistence
// ABOUTME: Verifies round trips, vector blobs, ordering, and delete-all
package sqlite

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/stylistiq/vibematch/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.TempDir() + "/vibematch.db")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sampleProduct(id string, createdAt time.Time) models.Product {
	return models.Product{
		ID:          id,
		Name:        "Boho Maxi Dress",
		Description: "Flowy, earthy-toned maxi dress.",
		VibeTags:    []string{"boho", "festival", "earthy"},
		Category:    "dresses",
		ImageURL:    "https://example.com/dress.jpg",
		Embedding:   []float64{0.1, -0.2, 0.3, 0.4},
		CreatedAt:   createdAt,
	}
}

func TestProductStore_RoundTrip(t *testing.T) {
	store := NewProductStore(testDB(t))
	ctx := context.Background()

	want := sampleProduct("p1", time.Now().UTC().Truncate(time.Second))
	if err := store.InsertProduct(ctx, want); err != nil {
		t.Fatalf("InsertProduct() error = %v", err)
	}

	got, err := store.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ListProducts() = %d products, want 1", len(got))
	}

	p := got[0]
	if p.ID != want.ID || p.Name != want.Name || p.Category != want.Category {
		t.Errorf("product fields mangled: %+v", p)
	}
	if !reflect.DeepEqual(p.VibeTags, want.VibeTags) {
		t.Errorf("VibeTags = %v, want %v", p.VibeTags, want.VibeTags)
	}
	if p.ImageURL != want.ImageURL {
		t.Errorf("ImageURL = %q, want %q", p.ImageURL, want.ImageURL)
	}
	if !reflect.DeepEqual(p.Embedding, want.Embedding) {
		t.Errorf("Embedding = %v, want %v (blob codec must be lossless)", p.Embedding, want.Embedding)
	}
}

func TestProductStore_RejectsMissingEmbedding(t *testing.T) {
	store := NewProductStore(testDB(t))

	p := sampleProduct("p1", time.Now())
	p.Embedding = nil

	if err := store.InsertProduct(context.Background(), p); err == nil {
		t.Fatal("InsertProduct() accepted a product without an embedding")
	}
}

func TestProductStore_ListOrderIsInsertionOrder(t *testing.T) {
	store := NewProductStore(testDB(t))
	ctx := context.Background()

	base := time.Now().UTC()
	for i, id := range []string{"a", "b", "c"} {
		p := sampleProduct(id, base.Add(time.Duration(i)*time.Second))
		if err := store.InsertProduct(ctx, p); err != nil {
			t.Fatalf("InsertProduct(%s) error = %v", id, err)
		}
	}

	got, err := store.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	if !reflect.DeepEqual(ids, []string{"a", "b", "c"}) {
		t.Errorf("order = %v, want [a b c]", ids)
	}
}

func TestProductStore_DeleteAll(t *testing.T) {
	store := NewProductStore(testDB(t))
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		if err := store.InsertProduct(ctx, sampleProduct(id, time.Now().UTC())); err != nil {
			t.Fatalf("InsertProduct() error = %v", err)
		}
	}

	n, err := store.DeleteAllProducts(ctx)
	if err != nil {
		t.Fatalf("DeleteAllProducts() error = %v", err)
	}
	if n != 2 {
		t.Errorf("deleted = %d, want 2", n)
	}

	got, err := store.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("catalog has %d products after delete-all, want 0", len(got))
	}
}

func TestProductStore_EmptyImageURL(t *testing.T) {
	store := NewProductStore(testDB(t))
	ctx := context.Background()

	p := sampleProduct("p1", time.Now().UTC())
	p.ImageURL = ""
	if err := store.InsertProduct(ctx, p); err != nil {
		t.Fatalf("InsertProduct() error = %v", err)
	}

	got, err := store.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if got[0].ImageURL != "" {
		t.Errorf("ImageURL = %q, want empty", got[0].ImageURL)
	}
}

func TestProductStore_CanceledContext(t *testing.T) {
	store := NewProductStore(testDB(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.InsertProduct(ctx, sampleProduct("p1", time.Now().UTC())); err == nil {
		t.Error("InsertProduct() with canceled context should fail")
	}
	if _, err := store.ListProducts(ctx); err == nil {
		t.Error("ListProducts() with canceled context should fail")
	}
	if _, err := store.DeleteAllProducts(ctx); err == nil {
		t.Error("DeleteAllProducts() with canceled context should fail")
	}
}

func TestVectorBlobCodec(t *testing.T) {
	vectors := [][]float64{
		{},
		{0.0},
		{1.5, -2.25, 3.125},
		{1e-300, -1e300},
	}

	for _, v := range vectors {
		got := blobToVector(vectorToBlob(v))
		if len(v) == 0 && len(got) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, v) {
			t.Errorf("codec round trip = %v, want %v", got, v)
		}
	}
}
