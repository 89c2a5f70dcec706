package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feattree/feattree/internal/doc"
	"github.com/feattree/feattree/internal/tracker"
)

// RenderCmd returns the render command.
func RenderCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Regenerate FEATURES.md and WORKFLOWS.md from the record store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := resolveRoot(root)

			store, err := tracker.New(tracker.DefaultConfig(cfg.ProjectRoot))
			if err != nil {
				return fmt.Errorf("opening record store: %w", err)
			}
			defer store.Close()

			pub := doc.NewPublisher(cfg.DataDir())
			if err := pub.Publish(store); err != nil {
				return fmt.Errorf("regenerating documents: %w", err)
			}

			fmt.Printf("Wrote %s\n", pub.Path(doc.FeaturesDoc))
			fmt.Printf("Wrote %s\n", pub.Path(doc.WorkflowsDoc))
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "project root (default: FEATTREE_ROOT, hook file, or cwd)")
	return cmd
}
