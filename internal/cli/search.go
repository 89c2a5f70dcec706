package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/feattree/feattree/internal/tracker"
)

// SearchCmd returns the search command.
func SearchCmd() *cobra.Command {
	var root string
	var kind string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Full-text search over records",
		Args:  cobra.MinimumNArgs(1),
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

			results, err := store.Search(k, strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}

			if len(results) == 0 {
				fmt.Println("No matches.")
				return nil
			}

			for _, r := range results {
				fmt.Printf("%s — %s %s\n", r.ID, r.Name, statusMarker(r.Status))
				if r.Description != "" {
					fmt.Printf("    %s\n", r.Description)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "project root (default: FEATTREE_ROOT, hook file, or cwd)")
	cmd.Flags().StringVar(&kind, "kind", "feature", "tree to search: feature or workflow")
	return cmd
}
