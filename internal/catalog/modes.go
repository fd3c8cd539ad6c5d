// Package catalog defines the read-only target catalogues consumed by the
// parameter validators and the generation pipeline: the list of supported
// modes (platform/asset families) and the asset targets each mode produces.
//
// Both catalogues are fixed at compile time. Validators treat them as
// immutable input; nothing in the programme mutates them after init.
package catalog

import "slices"

// modes is the ordered mode catalogue. Order matters: "all" expansions and
// the modes command present entries in this order.
var modes = []string{
	"spa",
	"pwa",
	"ssr",
	"bex",
	"cordova",
	"capacitor",
	"electron",
}

// Modes returns the full mode catalogue in canonical order.
// The returned slice is a copy; callers may mutate it freely.
func Modes() []string {
	return slices.Clone(modes)
}

// IsMode reports whether name is a known mode.
func IsMode(name string) bool {
	return slices.Contains(modes, name)
}
