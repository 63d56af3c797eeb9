// ABOUTME: MCP tool handler implementations for the vibe matcher
// ABOUTME: Translates tool calls into engine operations with JSON text results
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/stylistiq/vibematch/internal/core"
	"github.com/stylistiq/vibematch/internal/models"
)

// Engine is the search/catalog surface the tool handlers need
type Engine interface {
	Search(ctx context.Context, params core.SearchParams) (*core.SearchResponse, error)
	CreateProduct(ctx context.Context, draft models.ProductDraft) (*models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	SeedCatalog(ctx context.Context) (*core.SeedReport, error)
	ClearCatalog(ctx context.Context) (int64, error)
	RecentMetrics(ctx context.Context, limit int) ([]models.QueryMetric, error)
}

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	engine Engine
}

// SearchVibe handles the search_vibe tool
func (h *Handlers) SearchVibe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	vibe, err := request.RequireString("vibe")
	if err != nil {
		return mcp.NewToolResultError("vibe argument is required and must be a string"), nil
	}

	params := core.SearchParams{Vibe: vibe}

	// Absent arguments keep the engine defaults; present ones are validated
	args := request.GetArguments()
	if v, ok := args["limit"].(float64); ok {
		limit := int(v)
		params.Limit = &limit
	}
	if v, ok := args["threshold"].(float64); ok {
		threshold := v
		params.Threshold = &threshold
	}

	resp, err := h.engine.Search(ctx, params)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	return jsonResult(resp)
}

// AddProduct handles the add_product tool
func (h *Handlers) AddProduct(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name argument is required and must be a string"), nil
	}
	description, err := request.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError("description argument is required and must be a string"), nil
	}
	category, err := request.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError("category argument is required and must be a string"), nil
	}

	draft := models.ProductDraft{
		Name:        name,
		Description: description,
		Category:    category,
		ImageURL:    request.GetString("image_url", ""),
		VibeTags:    request.GetStringSlice("vibe_tags", nil),
	}

	product, err := h.engine.CreateProduct(ctx, draft)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("product creation failed: %v", err)), nil
	}

	return jsonResult(product)
}

// ListProducts handles the list_products tool
func (h *Handlers) ListProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	products, err := h.engine.ListProducts(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing products failed: %v", err)), nil
	}
	if products == nil {
		products = []models.Product{}
	}

	return jsonResult(map[string]interface{}{
		"count":    len(products),
		"products": products,
	})
}

// SeedCatalog handles the seed_catalog tool
func (h *Handlers) SeedCatalog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, err := h.engine.SeedCatalog(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("seeding failed: %v", err)), nil
	}
	return jsonResult(report)
}

// ClearCatalog handles the clear_catalog tool
func (h *Handlers) ClearCatalog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := h.engine.ClearCatalog(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("clearing catalog failed: %v", err)), nil
	}
	return jsonResult(map[string]int64{"deleted_count": n})
}

// RecentMetrics handles the recent_metrics tool
func (h *Handlers) RecentMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 5)

	metrics, err := h.engine.RecentMetrics(ctx, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing metrics failed: %v", err)), nil
	}
	if metrics == nil {
		metrics = []models.QueryMetric{}
	}
	return jsonResult(metrics)
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
