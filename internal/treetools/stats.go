package treetools

import (
	"context"
	"fmt"
	"strings"

	"github.com/feattree/feattree/internal/tracker"
	"github.com/mark3labs/mcp-go/mcp"
)

// StatsTool handles the tree_stats MCP tool.
type StatsTool struct {
	store *tracker.Store
}

// NewStatsTool creates a StatsTool.
func NewStatsTool(store *tracker.Store) *StatsTool {
	return &StatsTool{store: store}
}

// Definition returns the MCP tool definition for tree_stats.
func (t *StatsTool) Definition() mcp.Tool {
	return mcp.NewTool("tree_stats",
		mcp.WithDescription(
			"Aggregate record counts: features and workflows by lifecycle status.",
		),
	)
}

// Handle processes the tree_stats tool call.
func (t *StatsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := t.store.Stats()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to collect stats: %v", err)), nil
	}

	var b strings.Builder
	b.WriteString("Record statistics:\n\n")
	fmt.Fprintf(&b, "- Features: %d\n", stats.Features)
	fmt.Fprintf(&b, "- Workflows: %d\n", stats.Workflows)
	fmt.Fprintf(&b, "- Planned: %d | In progress: %d | Done: %d\n",
		stats.Planned, stats.InProgress, stats.Done)
	fmt.Fprintf(&b, "- Soft-deleted (retained): %d\n", stats.Deleted)

	return mcp.NewToolResultText(b.String()), nil
}
