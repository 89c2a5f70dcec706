package treetools

import (
	"context"
	"fmt"

	"github.com/feattree/feattree/internal/doc"
	"github.com/feattree/feattree/internal/tracker"
	"github.com/mark3labs/mcp-go/mcp"
)

// DeleteTool handles the feature_delete / workflow_delete MCP tools.
type DeleteTool struct {
	store *tracker.Store
	pub   *doc.Publisher
	kind  tracker.Kind
}

// NewDeleteTool creates a DeleteTool for the given record kind.
func NewDeleteTool(store *tracker.Store, pub *doc.Publisher, kind tracker.Kind) *DeleteTool {
	return &DeleteTool{store: store, pub: pub, kind: kind}
}

// Definition returns the MCP tool definition.
func (t *DeleteTool) Definition() mcp.Tool {
	noun := string(t.kind)
	return mcp.NewTool(toolName(t.kind, "delete"),
		mcp.WithDescription(
			"Soft-delete a "+noun+". The record is retained for history but leaves "+
				"search results and the rendered documents. Idempotent.",
		),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Record id"),
		),
	)
}

// Handle processes the delete tool call.
func (t *DeleteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("'id' is required"), nil
	}

	rec, err := t.store.Delete(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete %s: %v", t.kind, err)), nil
	}

	warn := publishNote(t.pub, t.store)
	return mcp.NewToolResultText(fmt.Sprintf(
		"Deleted %s %q (%s). The record is retained in storage for history.%s",
		t.kind, rec.ID, rec.Name, warn,
	)), nil
}
