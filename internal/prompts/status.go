// Package prompts provides the MCP prompts (slash-command surfaces).
package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// StatusPrompt handles the feattree-status MCP prompt.
// It instructs the AI to survey the current record trees.
type StatusPrompt struct{}

// NewStatusPrompt creates a StatusPrompt.
func NewStatusPrompt() *StatusPrompt {
	return &StatusPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *StatusPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("feattree-status",
		mcp.WithPromptDescription(
			"Survey the current feature and workflow trees: what exists, "+
				"what is in progress, and what to pick up next.",
		),
	)
}

// Handle processes the feattree-status prompt request.
func (p *StatusPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Feature Tree Status",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please call `tree_stats`, then `feature_search` and `workflow_search` " +
						"for the areas we have been working on.\n\n" +
						"Then:\n" +
						"1. Summarize the tree: what is done, in progress, and planned\n" +
						"2. Point out features missing code_symbols or files metadata\n" +
						"3. Suggest what to implement next",
				),
			},
		},
	}, nil
}
