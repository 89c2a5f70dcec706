package treetools

import (
	"context"
	"fmt"

	"github.com/feattree/feattree/internal/doc"
	"github.com/feattree/feattree/internal/tracker"
	"github.com/mark3labs/mcp-go/mcp"
)

// AddTool handles the feature_add / workflow_add MCP tools.
type AddTool struct {
	store *tracker.Store
	pub   *doc.Publisher
	kind  tracker.Kind
}

// NewAddTool creates an AddTool for the given record kind.
func NewAddTool(store *tracker.Store, pub *doc.Publisher, kind tracker.Kind) *AddTool {
	return &AddTool{store: store, pub: pub, kind: kind}
}

// Definition returns the MCP tool definition.
func (t *AddTool) Definition() mcp.Tool {
	noun := string(t.kind)
	return mcp.NewTool(toolName(t.kind, "add"),
		mcp.WithDescription(
			"Create a new "+noun+". Use a dotted id hierarchy (PARENT.child) or parent_id "+
				"to nest it. Fails if the id already exists, including among deleted records.",
		),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Stable unique identifier, e.g. AUTH.login"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Short display label"),
		),
		mcp.WithString("parent_id",
			mcp.Description("Id of the parent "+noun+" (omit for a root)"),
		),
		mcp.WithString("description",
			mcp.Description("Free-text description"),
		),
		mcp.WithString("status",
			mcp.Description("Initial status: planned (default), in-progress, or done"),
		),
		mcp.WithString("uses",
			mcp.Description("JSON array of record ids this "+noun+" depends on"),
		),
	)
}

// Handle processes the add tool call.
func (t *AddTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("'id' is required"), nil
	}
	name := req.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("'name' is required"), nil
	}

	uses, _, err := stringListArg(req, "uses")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rec, err := t.store.Create(tracker.CreateParams{
		ID:          id,
		Kind:        t.kind,
		Name:        name,
		ParentID:    req.GetString("parent_id", ""),
		Description: req.GetString("description", ""),
		Status:      tracker.Status(req.GetString("status", "")),
		Uses:        uses,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create %s: %v", t.kind, err)), nil
	}

	warn := publishNote(t.pub, t.store)
	return mcp.NewToolResultText(fmt.Sprintf(
		"Created %s %q (%s, status: %s)%s", t.kind, rec.ID, rec.Name, rec.Status, warn,
	)), nil
}
