// Package doc renders the record forest into derived Markdown documents.
//
// Rendering is a pure function of the forest: the same input yields
// byte-identical output, so regenerating after a no-op mutation never
// produces spurious diffs. The rendered files are a convenience artifact,
// never the source of truth — they are rebuilt wholesale on every
// mutation and any manual edits are lost.
package doc

import (
	"fmt"
	"strings"

	"github.com/feattree/feattree/internal/tracker"
)

// Render produces the Markdown document for one record forest.
// Depth-first: each record is a heading nested one level deeper than its
// parent, followed by its description and a bullet list of metadata.
// Status is always shown; list fields only when non-empty.
func Render(title string, forest []*tracker.Node) string {
	lines := []string{
		"# " + title,
		"",
		"> Auto-generated. Do not edit — regenerated on every change.",
		"",
	}

	for _, root := range forest {
		lines = append(lines, renderNode(root, 2)...)
	}

	return strings.Join(lines, "\n") + "\n"
}

func renderNode(node *tracker.Node, level int) []string {
	var lines []string
	prefix := strings.Repeat("#", level)

	lines = append(lines, fmt.Sprintf("%s %s", prefix, node.ID))
	lines = append(lines, fmt.Sprintf("**%s**", node.Name))
	if node.Description != "" {
		lines = append(lines, node.Description)
	}
	lines = append(lines, "")

	lines = append(lines, fmt.Sprintf("- **Status:** %s", node.Status))
	if len(node.CodeSymbols) > 0 {
		lines = append(lines, fmt.Sprintf("- **Symbols:** %s", strings.Join(node.CodeSymbols, ", ")))
	}
	if len(node.Files) > 0 {
		lines = append(lines, fmt.Sprintf("- **Files:** %s", strings.Join(node.Files, ", ")))
	}
	if len(node.CommitIDs) > 0 {
		lines = append(lines, fmt.Sprintf("- **Commits:** %s", strings.Join(node.CommitIDs, ", ")))
	}
	if len(node.Uses) > 0 {
		lines = append(lines, fmt.Sprintf("- **Uses:** %s", strings.Join(node.Uses, ", ")))
	}
	if node.TechnicalNotes != "" {
		lines = append(lines, fmt.Sprintf("- **Notes:** %s", node.TechnicalNotes))
	}
	lines = append(lines, "")

	for _, child := range node.Children {
		lines = append(lines, renderNode(child, level+1)...)
	}

	return lines
}
