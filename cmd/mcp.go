/*
Copyright © 2026 James Tio
*/

// mcp.go implements the "iconforge mcp" command, starting the Model
// Context Protocol server over stdio.

package cmd

import (
	"github.com/jamestiotio/iconforge/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for LLM integration",
	Long: `Starts a Model Context Protocol server over stdio, exposing
parameter validation, catalogue inspection and asset generation as
tools for MCP clients such as Claude Desktop.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
