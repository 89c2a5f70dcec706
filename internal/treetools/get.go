package treetools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/feattree/feattree/internal/tracker"
	"github.com/mark3labs/mcp-go/mcp"
)

// GetTool handles the feature_get / workflow_get MCP tools.
type GetTool struct {
	store *tracker.Store
	kind  tracker.Kind
}

// NewGetTool creates a GetTool for the given record kind.
func NewGetTool(store *tracker.Store, kind tracker.Kind) *GetTool {
	return &GetTool{store: store, kind: kind}
}

// Definition returns the MCP tool definition.
func (t *GetTool) Definition() mcp.Tool {
	noun := string(t.kind)
	return mcp.NewTool(toolName(t.kind, "get"),
		mcp.WithDescription(
			"Get full details of a single "+noun+" by id, including its direct "+
				"children and the records that use it.",
		),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Record id"),
		),
	)
}

// recordDetail is the JSON shape returned by the get tools.
type recordDetail struct {
	tracker.Record
	Children []recordRef `json:"children,omitempty"`
	UsedBy   []recordRef `json:"used_by,omitempty"`
}

type recordRef struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Status tracker.Status `json:"status"`
}

// Handle processes the get tool call.
func (t *GetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("'id' is required"), nil
	}

	rec, err := t.store.Get(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get %s: %v", t.kind, err)), nil
	}

	detail := recordDetail{Record: *rec}

	children, err := t.store.Children(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list children: %v", err)), nil
	}
	for _, c := range children {
		detail.Children = append(detail.Children, recordRef{ID: c.ID, Name: c.Name, Status: c.Status})
	}

	usedBy, err := t.store.UsedBy(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to resolve used-by: %v", err)), nil
	}
	for _, u := range usedBy {
		detail.UsedBy = append(detail.UsedBy, recordRef{ID: u.ID, Name: u.Name, Status: u.Status})
	}

	data, err := json.MarshalIndent(detail, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode %s: %v", t.kind, err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
