package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/feattree/feattree/internal/tracker"
)

// TreeCmd returns the tree command.
func TreeCmd() *cobra.Command {
	var root string
	var kind string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the feature or workflow tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			k := tracker.Kind(kind)
			if !k.Valid() {
				return fmt.Errorf("unknown kind %q (expected feature or workflow)", kind)
			}

			cfg := resolveRoot(root)
			store, err := tracker.New(tracker.DefaultConfig(cfg.ProjectRoot))
			if err != nil {
				return fmt.Errorf("opening record store: %w", err)
			}
			defer store.Close()

			forest, err := store.ListForest(k)
			if err != nil {
				return fmt.Errorf("listing %ss: %w", k, err)
			}

			if len(forest) == 0 {
				fmt.Printf("No %ss recorded yet.\n", k)
				return nil
			}

			for _, node := range forest {
				printNode(node, 0)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "project root (default: FEATTREE_ROOT, hook file, or cwd)")
	cmd.Flags().StringVar(&kind, "kind", "feature", "tree to print: feature or workflow")
	return cmd
}

func printNode(node *tracker.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Printf("%s%s — %s %s\n", indent, node.ID, node.Name, statusMarker(node.Status))
	for _, child := range node.Children {
		printNode(child, depth+1)
	}
}

// statusMarker colorizes the status tag for terminal output.
func statusMarker(status tracker.Status) string {
	switch status {
	case tracker.StatusDone:
		return color.New(color.FgHiGreen).Sprintf("[%s]", status)
	case tracker.StatusInProgress:
		return color.New(color.FgYellow).Sprintf("[%s]", status)
	default:
		return fmt.Sprintf("[%s]", status)
	}
}
