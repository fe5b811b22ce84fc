package cmd

import (
	"github.com/spf13/cobra"

	"vidsheet/internal"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run minimal MCP server for vidsheet",
	Long: `Run a Model Context Protocol (MCP) server that exposes vidsheet functionality as tools.

The MCP server provides three tools:
- get_video_transcript: Fetch a video transcript via Supadata
- summarize_video: Fetch and summarize a video with OpenAI
- list_pending_videos: List sheet rows the next run would process

Transport options:
- stdio (default): Standard MCP transport via stdin/stdout
- http: HTTP transport on specified port (use --port to configure)`,
	Example: `  # Run MCP server with stdio transport
  vidsheet mcp

  # Run MCP server with HTTP transport on port 8080
  vidsheet mcp --transport=http --port=8080`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// MCP uses stdio protocol, keep stdout clean
		config.Quiet = true
		return internal.ApplyOpenAIFlags(cmd, config)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.ValidateProviders(); err != nil {
			return err
		}

		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		app, err := internal.NewApp(cmd.Context(), config, logger)
		if err != nil {
			return err
		}

		mcpServer := internal.NewMCPServer(app)

		// Blocks until the context is cancelled
		return mcpServer.Start(cmd.Context(), transport, port)
	},
}

func init() {
	internal.AddOpenAIFlags(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "Transport protocol (stdio or http)")
	mcpCmd.Flags().Int("port", 8080, "Port for HTTP transport")
	rootCmd.AddCommand(mcpCmd)
}
