package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/feattree/feattree/internal/tracker"
)

// StatsCmd returns the stats command.
func StatsCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate record counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := resolveRoot(root)
			store, err := tracker.New(tracker.DefaultConfig(cfg.ProjectRoot))
			if err != nil {
				return fmt.Errorf("opening record store: %w", err)
			}
			defer store.Close()

			stats, err := store.Stats()
			if err != nil {
				return fmt.Errorf("collecting stats: %w", err)
			}

			fmt.Printf("Features:  %d\n", stats.Features)
			fmt.Printf("Workflows: %d\n", stats.Workflows)
			fmt.Printf("Status:    planned %d | %s %d | %s %d | deleted %d\n",
				stats.Planned,
				color.New(color.FgYellow).Sprint("in-progress"), stats.InProgress,
				color.New(color.FgHiGreen).Sprint("done"), stats.Done,
				stats.Deleted,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "project root (default: FEATTREE_ROOT, hook file, or cwd)")
	return cmd
}
