package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/disha/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server (stdio transport)",
	Long: `Start the MCP (Model Context Protocol) server using stdio transport.

This lets AI assistants rank sports, read the holistic profile and
check scholarship deadlines from your local data.

Add to the assistant's MCP config:

{
  "mcpServers": {
    "disha": {
      "command": "/path/to/disha",
      "args": ["mcp"]
    }
  }
}`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	// Check if MCP is enabled
	if !a.cfg.MCP.Enabled {
		return fmt.Errorf("MCP server is disabled in config")
	}

	server, err := mcp.New(a.db, a.cfg, mcp.Options{Version: version, Logger: a.logger})
	if err != nil {
		return fmt.Errorf("failed to start MCP server: %w", err)
	}

	// Handle interrupt
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	return server.Start(ctx)
}
