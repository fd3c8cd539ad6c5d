// tools.go implements the MCP tool handlers. Each handler translates the
// request arguments into the same raw parameter map the CLI builds from
// flags, then leans on the shared service layer so validation and
// generation behave identically across both entry points.

package mcp

import (
	"context"

	"github.com/jamestiotio/iconforge/internal/catalog"
	"github.com/jamestiotio/iconforge/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// paramArgs maps MCP argument names to pipeline parameter names. MCP
// tools use snake_case per convention; the pipeline keeps the camelCase
// names the CLI flags use.
var paramArgs = map[string]string{
	"icon":                    "icon",
	"output":                  "output",
	"mode":                    "mode",
	"quality":                 "quality",
	"padding":                 "padding",
	"filter":                  "filter",
	"background":              "background",
	"theme_color":             "themeColor",
	"png_color":               "pngColor",
	"splashscreen_color":      "splashscreenColor",
	"svg_color":               "svgColor",
	"splashscreen_icon_ratio": "splashscreenIconRatio",
	"profile":                 "profile",
	"assets":                  "assets",
}

// rawParams extracts the parameter map from a tool request.
func rawParams(req mcp.CallToolRequest) map[string]string {
	raw := make(map[string]string)
	for arg, name := range paramArgs {
		if v := getString(req, arg, ""); v != "" {
			raw[name] = v
		}
	}
	return raw
}

// generateAssets handles iconforge_generate tool calls.
func (h *handlers) generateAssets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	raw := rawParams(req)

	records, err := h.svc.Validate(raw)
	if err != nil {
		log.Event("mcp:generate", "validate").Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	var results []map[string]any
	for _, rec := range records {
		manifest, err := h.svc.Generate(rec, nil)

		icon, _ := rec["icon"].(string)
		output, _ := rec["output"].(string)
		log.Event("mcp:generate", "generate").Icon(icon).Output(output).Write(err)

		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		results = append(results, map[string]any{
			"output": rec["output"],
			"modes":  manifest.Modes,
			"assets": len(manifest.Assets),
		})
	}

	return jsonResult(map[string]any{
		"generated": results,
		"warnings":  h.svc.Warnings(),
	})
}

// verifyParams handles iconforge_verify tool calls.
func (h *handlers) verifyParams(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	raw := rawParams(req)

	records, err := h.svc.Validate(raw)

	log.Event("mcp:verify", "validate").Write(err)

	if err != nil {
		return jsonResult(map[string]any{
			"valid": false,
			"error": err.Error(),
		})
	}

	normalised := make([]map[string]any, len(records))
	for i, rec := range records {
		normalised[i] = rec
	}
	return jsonResult(map[string]any{
		"valid":    true,
		"params":   normalised,
		"warnings": h.svc.Warnings(),
	})
}

// listModes handles iconforge_modes tool calls.
func (h *handlers) listModes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	mode := getString(req, "mode", "")
	withTargets := getBool(req, "targets", false)

	modes := catalog.Modes()
	if mode != "" {
		if !catalog.IsMode(mode) {
			return mcp.NewToolResultError("unknown mode: " + mode), nil
		}
		modes = []string{mode}
	}

	out := make([]map[string]any, 0, len(modes))
	for _, m := range modes {
		entry := map[string]any{"mode": m}
		if withTargets {
			entry["targets"] = catalog.Targets(m)
		}
		out = append(out, entry)
	}
	return jsonResult(out)
}
