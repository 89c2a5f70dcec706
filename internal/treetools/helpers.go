// Package treetools provides the MCP tool handlers for the record tracker.
//
// Each tool handler follows the same pattern:
// - A struct with dependencies (tracker.Store, doc.Publisher) injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() processes the request and returns a result
//
// Feature and workflow tools share implementations: every handler is
// parameterized by record kind, so feature_add and workflow_add are the
// same struct registered twice.
package treetools

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/feattree/feattree/internal/doc"
	"github.com/feattree/feattree/internal/tracker"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolName builds a kind-prefixed tool name, e.g. "feature_search".
func toolName(kind tracker.Kind, op string) string {
	return string(kind) + "_" + op
}

// stringListArg extracts a list argument. Lists arrive either as native
// JSON arrays or as a JSON-encoded string (both are accepted). The second
// return reports whether the argument was present at all — absent means
// "keep the prior value" for updates.
func stringListArg(req mcp.CallToolRequest, key string) ([]string, bool, error) {
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		return nil, false, nil
	}
	switch v := raw.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return []string{}, true, nil
		}
		var items []string
		if err := json.Unmarshal([]byte(v), &items); err != nil {
			return nil, true, fmt.Errorf("'%s' must be a JSON array of strings: %v", key, err)
		}
		return items, true, nil
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, true, fmt.Errorf("'%s' must contain only strings", key)
			}
			items = append(items, s)
		}
		return items, true, nil
	}
	return nil, true, fmt.Errorf("'%s' must be a JSON array of strings", key)
}

// stringArg reports both the value and whether the argument was present,
// so updates can distinguish "clear this field" from "leave it alone".
func stringArg(req mcp.CallToolRequest, key string) (string, bool) {
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		return "", false
	}
	s, ok := raw.(string)
	return s, ok
}

// publishNote regenerates the derived documents after a successful
// mutation. The mutation has already committed: a publish failure is
// logged and surfaced as a warning in the tool result, never rolled back.
func publishNote(pub *doc.Publisher, store *tracker.Store) string {
	if pub == nil {
		return ""
	}
	if err := pub.Publish(store); err != nil {
		log.Printf("WARNING: document regeneration failed: %v", err)
		return fmt.Sprintf("\n\nWarning: document regeneration failed: %v", err)
	}
	return ""
}

// truncate shortens a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
