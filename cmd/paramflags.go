/*
Copyright © 2026 James Tio
*/

// paramflags.go binds the generation parameter flags shared by the
// generate and verify commands.
//
// Separated so the two commands cannot drift: both register the same
// flag set and both collect raw values identically. Flags are collected
// only when explicitly set, which keeps "flag omitted" distinct from
// "flag set to its zero value" - the validation pipeline treats the two
// differently for numeric parameters.

package cmd

import "github.com/spf13/cobra"

// paramFlags maps flag names to pipeline parameter names.
var paramFlags = map[string]string{
	"icon":                    "icon",
	"background":              "background",
	"output":                  "output",
	"mode":                    "mode",
	"include":                 "include",
	"assets":                  "assets",
	"quality":                 "quality",
	"padding":                 "padding",
	"filter":                  "filter",
	"theme-color":             "themeColor",
	"png-color":               "pngColor",
	"splashscreen-color":      "splashscreenColor",
	"svg-color":               "svgColor",
	"splashscreen-icon-ratio": "splashscreenIconRatio",
	"profile":                 "profile",
}

// addParamFlags registers the generation parameter flags on a command.
func addParamFlags(c *cobra.Command) {
	f := c.Flags()
	f.StringP("icon", "i", "", "Source icon PNG (bundled sample when omitted)")
	f.StringP("background", "b", "", "Splashscreen background PNG")
	f.StringP("output", "O", "", "Output directory for generated assets")
	f.StringP("mode", "m", "", "Comma-separated modes, or \"all\" (default)")
	f.String("include", "", "Comma-separated modes to include, or \"all\"")
	f.String("assets", "", "Extra modes to generate, or \"all\"")
	f.StringP("quality", "q", "", "PNG compression quality, 1 (fastest) to 12 (smallest)")
	f.StringP("padding", "p", "", "Icon padding in pixels: \"h\" or \"h,v\"")
	f.StringP("filter", "f", "", "Restrict to one generator: png, ico, icns, splashscreen, svg")
	f.String("theme-color", "", "Theme colour hex digits (e.g. 1976D2)")
	f.String("png-color", "", "PNG accent colour hex digits")
	f.String("splashscreen-color", "", "Splashscreen fill colour hex digits")
	f.String("svg-color", "", "SVG colour hex digits")
	f.String("splashscreen-icon-ratio", "", "Icon size as % of the splashscreen's shorter edge (0-100)")
	f.String("profile", "", "Profile JSON file or directory to seed parameters from")
}

// collectParams gathers explicitly set parameter flags into the raw
// parameter map the service layer validates.
func collectParams(c *cobra.Command) map[string]string {
	raw := make(map[string]string)
	for flag, name := range paramFlags {
		if c.Flags().Changed(flag) {
			raw[name], _ = c.Flags().GetString(flag)
		}
	}
	return raw
}
