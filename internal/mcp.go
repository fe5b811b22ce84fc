package internal

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MCPServer wraps the MCP server and application dependencies
type MCPServer struct {
	app       *App
	mcpServer *server.MCPServer
}

// NewMCPServer creates a new MCP server instance
func NewMCPServer(app *App) *MCPServer {
	mcpServer := server.NewMCPServer(
		"vidsheet-server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s := &MCPServer{
		app:       app,
		mcpServer: mcpServer,
	}

	s.registerTools()

	return s
}

// registerTools registers all available MCP tools
func (s *MCPServer) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("get_video_transcript",
		mcp.WithDescription("Fetch the plain-text transcript of a video via the Supadata transcription API. Works for YouTube, X/Twitter, Vimeo, TikTok, Instagram, Facebook, LinkedIn, and Reddit URLs."),
		mcp.WithString("url",
			mcp.Description("Video URL"),
			mcp.Required(),
		),
	), s.handleGetTranscript)

	s.mcpServer.AddTool(mcp.NewTool("summarize_video",
		mcp.WithDescription("Fetch the transcript of a video and summarize it with the configured OpenAI model. Does not read or write the spreadsheet."),
		mcp.WithString("url",
			mcp.Description("Video URL"),
			mcp.Required(),
		),
	), s.handleSummarize)

	s.mcpServer.AddTool(mcp.NewTool("list_pending_videos",
		mcp.WithDescription("List the spreadsheet rows a pipeline run would process right now: supported video URLs whose status cell is still empty. Read-only."),
	), s.handleListPending)
}

// handleGetTranscript implements the get_video_transcript tool
func (s *MCPServer) handleGetTranscript(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url parameter is required and must be a string"), nil
	}

	transcript, err := s.app.FetchTranscript(ctx, url)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("transcript error", err), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(transcript)},
	}, nil
}

// handleSummarize implements the summarize_video tool
func (s *MCPServer) handleSummarize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url parameter is required and must be a string"), nil
	}

	summary, err := s.app.SummarizeURL(ctx, url)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("summarize error", err), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(summary)},
	}, nil
}

// handleListPending implements the list_pending_videos tool
func (s *MCPServer) handleListPending(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries, err := s.app.PendingRecords(ctx)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("scan error", err), nil
	}

	if len(entries) == 0 {
		return &mcp.CallToolResult{
			Content: []mcp.Content{mcp.NewTextContent("No pending videos.")},
		}, nil
	}

	var buf strings.Builder
	buf.WriteString(fmt.Sprintf("%d pending video(s):\n", len(entries)))
	for _, entry := range entries {
		buf.WriteString(fmt.Sprintf("row %d: %s\n", entry.Row, entry.URL))
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(buf.String())},
	}, nil
}

// Start starts the MCP server using the specified transport
func (s *MCPServer) Start(ctx context.Context, transport string, port int) error {
	if transport == "http" {
		httpServer := server.NewStreamableHTTPServer(s.mcpServer)
		addr := fmt.Sprintf(":%d", port)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return httpServer.Start(addr)
	}

	// Default to stdio transport
	return server.ServeStdio(s.mcpServer)
}
