// Package cli implements the feattree subcommands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feattree/feattree/internal/config"
	feattreeserver "github.com/feattree/feattree/internal/server"
	"github.com/mark3labs/mcp-go/server"
)

// resolveRoot builds the config, preferring an explicit --root flag.
func resolveRoot(root string) config.Config {
	if root != "" {
		return config.Config{ProjectRoot: root}
	}
	return config.Resolve()
}

// ServeCmd returns the serve command.
func ServeCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		Long: `Start the feattree MCP server on stdio. Add it to your AI tool's
MCP config:

  {
    "mcpServers": {
      "feattree": {
        "command": "feattree",
        "args": ["serve"]
      }
    }
  }`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cleanup, err := feattreeserver.New(resolveRoot(root))
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}
			defer cleanup()

			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "project root (default: FEATTREE_ROOT, hook file, or cwd)")
	return cmd
}
