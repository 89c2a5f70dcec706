package treetools

import (
	"context"
	"fmt"
	"strings"

	"github.com/feattree/feattree/internal/tracker"
	"github.com/mark3labs/mcp-go/mcp"
)

// SearchTool handles the feature_search / workflow_search MCP tools.
type SearchTool struct {
	store *tracker.Store
	kind  tracker.Kind
}

// NewSearchTool creates a SearchTool for the given record kind.
func NewSearchTool(store *tracker.Store, kind tracker.Kind) *SearchTool {
	return &SearchTool{store: store, kind: kind}
}

// Definition returns the MCP tool definition.
func (t *SearchTool) Definition() mcp.Tool {
	noun := string(t.kind)
	return mcp.NewTool(toolName(t.kind, "search"),
		mcp.WithDescription(
			"Fuzzy search "+noun+"s by name, description, or technical notes. "+
				"Use before starting work to understand what exists. Deleted records never match.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query — keywords or natural language"),
		),
	)
}

// Handle processes the search tool call.
func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}

	results, err := t.store.Search(t.kind, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No %ss found matching your query.", t.kind)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d %ss:\n\n", len(results), t.kind)

	for i, r := range results {
		parent := ""
		if r.ParentID != "" {
			parent = " | parent: " + r.ParentID
		}
		snippet := ""
		if r.Description != "" {
			snippet = "\n    " + truncate(r.Description, 200)
		}
		fmt.Fprintf(&b, "[%d] %s — %s [%s]%s%s\n",
			i+1, r.ID, r.Name, r.Status, parent, snippet)
	}

	return mcp.NewToolResultText(b.String()), nil
}
