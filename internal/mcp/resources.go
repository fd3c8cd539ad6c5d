// resources.go implements MCP resource handlers for guide access.
//
// MCP resources provide read-only access to guide topics via URI schemes,
// enabling LLM clients to load documentation as context without using
// tools. URIs follow the pattern iconforge://guide/{topic}.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jamestiotio/iconforge/guide"
	"github.com/jamestiotio/iconforge/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

var (
	// ErrInvalidURI indicates a malformed resource URI, helping clients
	// debug URI construction issues.
	ErrInvalidURI = errors.New("invalid URI")
)

// readGuide handles iconforge://guide/{topic} resource requests.
func (h *handlers) readGuide(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) { //nolint:revive // ctx for future use
	const prefix = "iconforge://guide/"
	if !strings.HasPrefix(req.Params.URI, prefix) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURI, req.Params.URI)
	}
	topic := strings.TrimPrefix(req.Params.URI, prefix)

	content, err := guide.Get(topic)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}

// getGuide handles iconforge_guide tool calls.
func (h *handlers) getGuide(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	topic := getString(req, "topic", "")

	content, err := guide.Get(topic)

	log.Event("mcp:guide", "read").Detail("topic", topic).Write(err)

	if err != nil {
		// If topic not found, return list of available topics
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return jsonResult(map[string]any{
			"error":            err.Error(),
			"available_topics": topics,
		})
	}

	return mcp.NewToolResultText(content), nil
}
