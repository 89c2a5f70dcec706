// Package resources implements MCP resource handlers for the rendered
// documents.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (feattree://...) following MCP conventions.
package resources

import (
	"context"
	"fmt"
	"os"

	"github.com/feattree/feattree/internal/doc"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handler serves the derived Markdown documents as MCP resources.
type Handler struct {
	pub *doc.Publisher
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(pub *doc.Publisher) *Handler {
	return &Handler{pub: pub}
}

// FeaturesResource returns the MCP resource definition for FEATURES.md.
func (h *Handler) FeaturesResource() mcp.Resource {
	return mcp.NewResource(
		"feattree://docs/features",
		"Feature Tree Document",
		mcp.WithResourceDescription("The rendered FEATURES.md — the current non-deleted feature forest"),
		mcp.WithMIMEType("text/markdown"),
	)
}

// WorkflowsResource returns the MCP resource definition for WORKFLOWS.md.
func (h *Handler) WorkflowsResource() mcp.Resource {
	return mcp.NewResource(
		"feattree://docs/workflows",
		"Workflow Tree Document",
		mcp.WithResourceDescription("The rendered WORKFLOWS.md — the current non-deleted workflow forest"),
		mcp.WithMIMEType("text/markdown"),
	)
}

// HandleFeatures returns the rendered feature document.
func (h *Handler) HandleFeatures(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return h.read(req.Params.URI, doc.FeaturesDoc)
}

// HandleWorkflows returns the rendered workflow document.
func (h *Handler) HandleWorkflows(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return h.read(req.Params.URI, doc.WorkflowsDoc)
}

func (h *Handler) read(uri, name string) ([]mcp.ResourceContents, error) {
	data, err := os.ReadFile(h.pub.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return errorResource(uri, name+" has not been generated yet — add a record first"), nil
		}
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
