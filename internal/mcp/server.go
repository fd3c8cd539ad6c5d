// Package mcp implements the Model Context Protocol server, exposing
// iconforge operations to LLMs. This enables AI assistants to validate
// parameters, inspect the mode catalogue and generate asset sets through
// a standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jamestiotio/iconforge/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio, enabling LLM integration.
// Uses stdio transport for compatibility with Claude Desktop and other
// MCP clients.
func Serve() error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	svc, err := service.New()
	if err != nil {
		slog.Error("failed to initialise service", "error", err)
		return err
	}

	h := &handlers{svc: svc}

	s := server.NewMCPServer(
		"iconforge",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)

	slog.Info("iconforge MCP server ready", "version", Version, "transport", "stdio")

	err = server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with access to the shared
// service layer.
type handlers struct {
	svc *service.Service
}

// registerResources adds URI-based read-only access to guide content.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"iconforge://guide/{topic}",
			"Guide",
			mcp.WithTemplateDescription("Read guide content by topic"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		h.readGuide,
	)
}

// registerTools exposes iconforge operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	// Generate assets
	s.AddTool(
		mcp.NewTool("iconforge_generate",
			mcp.WithDescription("Validate parameters and generate icon/splashscreen assets"),
			mcp.WithString("icon", mcp.Description("Source icon PNG path (bundled sample when omitted)")),
			mcp.WithString("output", mcp.Required(), mcp.Description("Output directory for generated assets")),
			mcp.WithString("mode", mcp.Description("Comma-separated modes or 'all' (default: all)")),
			mcp.WithString("quality", mcp.Description("Compression quality 1-12")),
			mcp.WithString("padding", mcp.Description("Icon padding in pixels: 'h' or 'h,v'")),
			mcp.WithString("filter", mcp.Description("Restrict generation to one generator (png, ico, icns, splashscreen, svg)")),
			mcp.WithString("background", mcp.Description("Splashscreen background PNG path")),
			mcp.WithString("theme_color", mcp.Description("Theme colour hex digits (e.g. 1976D2)")),
			mcp.WithString("png_color", mcp.Description("PNG accent colour hex digits")),
			mcp.WithString("splashscreen_color", mcp.Description("Splashscreen fill colour hex digits")),
			mcp.WithString("svg_color", mcp.Description("SVG colour hex digits")),
			mcp.WithString("splashscreen_icon_ratio", mcp.Description("Icon size as % of splashscreen's shorter edge (0-100)")),
			mcp.WithString("profile", mcp.Description("Profile JSON file or directory to seed parameters from")),
			mcp.WithString("assets", mcp.Description("Extra modes to generate, or 'all'")),
		),
		h.generateAssets,
	)

	// Verify parameters without generating
	s.AddTool(
		mcp.NewTool("iconforge_verify",
			mcp.WithDescription("Run parameter validation only, reporting the normalised values without generating anything"),
			mcp.WithString("icon", mcp.Description("Source icon PNG path")),
			mcp.WithString("output", mcp.Required(), mcp.Description("Output directory (checked for presence only)")),
			mcp.WithString("mode", mcp.Description("Comma-separated modes or 'all'")),
			mcp.WithString("quality", mcp.Description("Compression quality 1-12")),
			mcp.WithString("padding", mcp.Description("Icon padding in pixels: 'h' or 'h,v'")),
			mcp.WithString("filter", mcp.Description("Restrict to one generator")),
			mcp.WithString("background", mcp.Description("Splashscreen background PNG path")),
			mcp.WithString("theme_color", mcp.Description("Theme colour hex digits")),
			mcp.WithString("png_color", mcp.Description("PNG accent colour hex digits")),
			mcp.WithString("splashscreen_color", mcp.Description("Splashscreen fill colour hex digits")),
			mcp.WithString("svg_color", mcp.Description("SVG colour hex digits")),
			mcp.WithString("splashscreen_icon_ratio", mcp.Description("Icon ratio percentage (0-100)")),
			mcp.WithString("profile", mcp.Description("Profile JSON file or directory")),
			mcp.WithString("assets", mcp.Description("Extra modes, or 'all'")),
		),
		h.verifyParams,
	)

	// Catalogue
	s.AddTool(
		mcp.NewTool("iconforge_modes",
			mcp.WithDescription("List the mode catalogue, optionally with the asset targets each mode produces"),
			mcp.WithString("mode", mcp.Description("Single mode to describe (empty for all)")),
			mcp.WithBoolean("targets", mcp.Description("Include per-mode asset targets")),
		),
		h.listModes,
	)

	// Guide
	s.AddTool(
		mcp.NewTool("iconforge_guide",
			mcp.WithDescription("Get help/guide content for iconforge commands"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g. 'generate', 'profiles') or empty for index")),
		),
		h.getGuide,
	)
}
