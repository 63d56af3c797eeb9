// ABOUTME: MCP tool definitions and registration for the vibe matcher
// ABOUTME: Exposes search, catalog, and metrics operations to LLM agents
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, engine Engine) *Handlers {
	handlers := &Handlers{engine: engine}

	server.AddTool(mcp.Tool{
		Name:        "search_vibe",
		Description: "Search the fashion catalog by free-text vibe description using semantic similarity. Returns ranked matches above the similarity threshold.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"vibe": map[string]interface{}{
					"type":        "string",
					"description": "Free-text description of the desired style or mood",
				},
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of results, 1-10 (default: 3)",
				},
				"threshold": map[string]interface{}{
					"type":        "number",
					"description": "Minimum similarity score, 0-1 (default: 0.7)",
				},
			},
			Required: []string{"vibe"},
		},
	}, handlers.SearchVibe)

	server.AddTool(mcp.Tool{
		Name:        "add_product",
		Description: "Add a product to the catalog. The embedding is computed server-side from name, description, and vibe tags.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Product name",
				},
				"description": map[string]interface{}{
					"type":        "string",
					"description": "Product description",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Product category (e.g. tops, dresses, outerwear)",
				},
				"vibe_tags": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Short style facets (e.g. 'cozy', 'edgy')",
				},
				"image_url": map[string]interface{}{
					"type":        "string",
					"description": "Optional product image URL",
				},
			},
			Required: []string{"name", "description", "category"},
		},
	}, handlers.AddProduct)

	server.AddTool(mcp.Tool{
		Name:        "list_products",
		Description: "List all products in the catalog.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListProducts)

	server.AddTool(mcp.Tool{
		Name:        "seed_catalog",
		Description: "Seed the catalog with the demo fashion product set. Repeated calls add duplicates.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.SeedCatalog)

	server.AddTool(mcp.Tool{
		Name:        "clear_catalog",
		Description: "Delete every product from the catalog. Search metrics are kept.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ClearCatalog)

	server.AddTool(mcp.Tool{
		Name:        "recent_metrics",
		Description: "List recent search metrics, most recent first.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of metrics to return (default: 5)",
				},
			},
		},
	}, handlers.RecentMetrics)

	return handlers
}
