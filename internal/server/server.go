// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools/prompts/resources that depend on them.
// No business logic lives here — only wiring.
package server

import (
	"fmt"

	"github.com/feattree/feattree/internal/config"
	"github.com/feattree/feattree/internal/doc"
	"github.com/feattree/feattree/internal/prompts"
	"github.com/feattree/feattree/internal/resources"
	"github.com/feattree/feattree/internal/tracker"
	"github.com/feattree/feattree/internal/treetools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered.
//
// The returned cleanup function closes the record store's database
// connection and must be called on shutdown (typically via defer).
func New(cfg config.Config) (*server.MCPServer, func(), error) {
	store, err := tracker.New(tracker.DefaultConfig(cfg.ProjectRoot))
	if err != nil {
		return nil, func() {}, fmt.Errorf("opening record store: %w", err)
	}
	cleanup := func() { _ = store.Close() }

	pub := doc.NewPublisher(cfg.DataDir())

	s := server.NewMCPServer(
		"feattree",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// Feature and workflow tools share handlers, registered per kind.
	for _, kind := range []tracker.Kind{tracker.KindFeature, tracker.KindWorkflow} {
		registerKindTools(s, store, pub, kind)
	}

	statsTool := treetools.NewStatsTool(store)
	s.AddTool(statsTool.Definition(), statsTool.Handle)

	statusPrompt := prompts.NewStatusPrompt()
	s.AddPrompt(statusPrompt.Definition(), statusPrompt.Handle)

	resourceHandler := resources.NewHandler(pub)
	s.AddResource(resourceHandler.FeaturesResource(), resourceHandler.HandleFeatures)
	s.AddResource(resourceHandler.WorkflowsResource(), resourceHandler.HandleWorkflows)

	return s, cleanup, nil
}

// registerKindTools registers the five record tools for one kind.
func registerKindTools(s *server.MCPServer, store *tracker.Store, pub *doc.Publisher, kind tracker.Kind) {
	searchTool := treetools.NewSearchTool(store, kind)
	s.AddTool(searchTool.Definition(), searchTool.Handle)

	addTool := treetools.NewAddTool(store, pub, kind)
	s.AddTool(addTool.Definition(), addTool.Handle)

	getTool := treetools.NewGetTool(store, kind)
	s.AddTool(getTool.Definition(), getTool.Handle)

	updateTool := treetools.NewUpdateTool(store, pub, kind)
	s.AddTool(updateTool.Definition(), updateTool.Handle)

	deleteTool := treetools.NewDeleteTool(store, pub, kind)
	s.AddTool(deleteTool.Definition(), deleteTool.Handle)
}

// serverInstructions returns the system instructions that tell the AI
// how to use feattree effectively.
func serverInstructions() string {
	return `You have access to feattree, a project metadata tracker.

Two parallel trees: Features (atomic code units) and Workflows
(user-facing experiences). Both are hierarchies of records with a stable
id; use a dotted convention (PARENT.child) or parent_id to nest.

## ATOMIC FEATURES

Features are small, implementable units — NOT categories.

BAD: "User Authentication" (category, cannot be implemented in one task)
GOOD: "User Login", "Email Verification", "Password Reset"

Rule: if "implement this feature" does not yield one complete, testable
unit, it is not atomic enough.

## WHY TRACK SYMBOLS, FILES, NOTES

Every record carries code_symbols, files, and technical_notes. Recording
them after implementing costs little and saves repeated rediscovery:
query the symbols, read only the relevant files, make precise edits.
Do not skip this step.

## WORKFLOWS

Workflows mirror features structurally but describe user-facing
experiences. A workflow's uses list links it to the feature ids it
depends on — modify a feature and you can see which workflows break.

## Tools

Features: feature_search, feature_get, feature_add, feature_update, feature_delete
Workflows: workflow_search, workflow_get, workflow_add, workflow_update, workflow_delete
Overview: tree_stats

## Protocol

1. Search before implementing — understand what exists
2. Features = atomic units, Workflows = compositions
3. ALWAYS update code_symbols/files/technical_notes after implementing
4. Status: planned → in-progress → done (deleted is a soft-delete marker)
5. List fields are replaced wholesale on update: read, modify, write back

Every mutation rewrites FEATURES.md and WORKFLOWS.md under .feat-tree/.
Those files are derived — never hand-edit them.`
}
