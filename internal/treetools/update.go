package treetools

import (
	"context"
	"fmt"

	"github.com/feattree/feattree/internal/doc"
	"github.com/feattree/feattree/internal/tracker"
	"github.com/mark3labs/mcp-go/mcp"
)

// UpdateTool handles the feature_update / workflow_update MCP tools.
type UpdateTool struct {
	store *tracker.Store
	pub   *doc.Publisher
	kind  tracker.Kind
}

// NewUpdateTool creates an UpdateTool for the given record kind.
func NewUpdateTool(store *tracker.Store, pub *doc.Publisher, kind tracker.Kind) *UpdateTool {
	return &UpdateTool{store: store, pub: pub, kind: kind}
}

// Definition returns the MCP tool definition. The schema enumerates
// exactly the mutable fields — anything else never reaches the store.
func (t *UpdateTool) Definition() mcp.Tool {
	noun := string(t.kind)
	return mcp.NewTool(toolName(t.kind, "update"),
		mcp.WithDescription(
			"Update a "+noun+". Only provided fields change; list fields (code_symbols, "+
				"files, commit_ids, uses) are replaced wholesale, not merged. "+
				"ALWAYS record code_symbols and files after implementing.",
		),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Record id"),
		),
		mcp.WithString("name",
			mcp.Description("New display label"),
		),
		mcp.WithString("description",
			mcp.Description("New description"),
		),
		mcp.WithString("status",
			mcp.Description("New status: planned, in-progress, done, or deleted"),
		),
		mcp.WithString("parent_id",
			mcp.Description("New parent id (empty string detaches to root)"),
		),
		mcp.WithString("technical_notes",
			mcp.Description("Notes the code cannot capture (tradeoffs, gotchas)"),
		),
		mcp.WithString("code_symbols",
			mcp.Description("JSON array of identifiers, e.g. [\"loginUser\"]"),
		),
		mcp.WithString("files",
			mcp.Description("JSON array of file paths involved"),
		),
		mcp.WithString("commit_ids",
			mcp.Description("JSON array of commit hashes"),
		),
		mcp.WithString("uses",
			mcp.Description("JSON array of record ids this "+noun+" depends on"),
		),
	)
}

// Handle processes the update tool call.
func (t *UpdateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("'id' is required"), nil
	}

	var p tracker.UpdateParams

	if v, ok := stringArg(req, "name"); ok {
		p.Name = &v
	}
	if v, ok := stringArg(req, "description"); ok {
		p.Description = &v
	}
	if v, ok := stringArg(req, "technical_notes"); ok {
		p.TechnicalNotes = &v
	}
	if v, ok := stringArg(req, "parent_id"); ok {
		p.ParentID = &v
	}
	if v, ok := stringArg(req, "status"); ok {
		status := tracker.Status(v)
		p.Status = &status
	}

	for _, f := range []struct {
		key  string
		dest **[]string
	}{
		{"code_symbols", &p.CodeSymbols},
		{"files", &p.Files},
		{"commit_ids", &p.CommitIDs},
		{"uses", &p.Uses},
	} {
		items, present, err := stringListArg(req, f.key)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if present {
			*f.dest = &items
		}
	}

	rec, err := t.store.Update(id, p)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to update %s: %v", t.kind, err)), nil
	}

	warn := publishNote(t.pub, t.store)
	return mcp.NewToolResultText(fmt.Sprintf(
		"Updated %s %q (status: %s)%s", t.kind, rec.ID, rec.Status, warn,
	)), nil
}
