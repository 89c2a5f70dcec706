// feattree: project metadata tracker MCP server
//
// Tracks hierarchical feature and workflow records in SQLite, serves
// them to AI coding assistants over MCP, and regenerates FEATURES.md
// and WORKFLOWS.md on every change.
//
// Usage:
//
//	feattree serve     # Start MCP server (stdio transport)
//	feattree tree      # Print the feature tree
//	feattree render    # Regenerate the derived documents
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/feattree/feattree/internal/cli"
	"github.com/feattree/feattree/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "feattree",
		Short:   "feattree — project metadata tracker for AI coding assistants",
		Version: server.Version,
		Long: `feattree stores a hierarchical list of features and workflows for a
project, supports full-text search over them, and regenerates derived
Markdown documents whenever records change. AI assistants consume it
as an MCP server (stdio transport).`,
	}

	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.RenderCmd())
	rootCmd.AddCommand(cli.TreeCmd())
	rootCmd.AddCommand(cli.SearchCmd())
	rootCmd.AddCommand(cli.StatsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
