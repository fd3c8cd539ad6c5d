// targets.go defines the per-mode asset target tables.
//
// Each mode maps to the list of files generated for it: the output file
// name, the generator responsible for producing it, and the pixel
// dimensions. Square assets carry the same width and height.

package catalog

import "slices"

// Target describes one asset file a mode produces.
type Target struct {
	Name      string // output file name, relative to the mode directory
	Generator string // generator responsible for this asset
	Width     int
	Height    int
}

// square is a shorthand constructor for width == height targets.
func square(name, generator string, size int) Target {
	return Target{Name: name, Generator: generator, Width: size, Height: size}
}

// webFavicons are the targets shared by the browser-served modes
// (spa, pwa, ssr).
var webFavicons = []Target{
	square("favicon-16x16.png", "png", 16),
	square("favicon-32x32.png", "png", 32),
	square("favicon-96x96.png", "png", 96),
	square("favicon-128x128.png", "png", 128),
	square("favicon.ico", "ico", 48),
	square("safari-pinned-tab.svg", "svg", 512),
}

var targets = map[string][]Target{
	"spa": webFavicons,
	"ssr": webFavicons,
	"pwa": append(slices.Clone(webFavicons), []Target{
		square("icon-128x128.png", "png", 128),
		square("icon-192x192.png", "png", 192),
		square("icon-256x256.png", "png", 256),
		square("icon-384x384.png", "png", 384),
		square("icon-512x512.png", "png", 512),
		square("apple-icon-180x180.png", "png", 180),
		square("ms-icon-144x144.png", "png", 144),
		{Name: "apple-launch-1125x2436.png", Generator: "splashscreen", Width: 1125, Height: 2436},
		{Name: "apple-launch-1242x2688.png", Generator: "splashscreen", Width: 1242, Height: 2688},
	}...),
	"bex": {
		square("icon-16x16.png", "png", 16),
		square("icon-48x48.png", "png", 48),
		square("icon-128x128.png", "png", 128),
	},
	"cordova": {
		square("icon-mdpi.png", "png", 48),
		square("icon-hdpi.png", "png", 72),
		square("icon-xhdpi.png", "png", 96),
		square("icon-xxhdpi.png", "png", 144),
		square("icon-xxxhdpi.png", "png", 192),
		square("icon-57x57.png", "png", 57),
		square("icon-72x72.png", "png", 72),
		square("icon-120x120.png", "png", 120),
		square("icon-167x167.png", "png", 167),
		square("icon-1024x1024.png", "png", 1024),
		{Name: "splash-port-hdpi.png", Generator: "splashscreen", Width: 480, Height: 800},
		{Name: "splash-land-hdpi.png", Generator: "splashscreen", Width: 800, Height: 480},
		{Name: "splash-2048x2732.png", Generator: "splashscreen", Width: 2048, Height: 2732},
	},
	"capacitor": {
		square("icon-192x192.png", "png", 192),
		square("icon-512x512.png", "png", 512),
		{Name: "splash-2732x2732.png", Generator: "splashscreen", Width: 2732, Height: 2732},
	},
	"electron": {
		square("icon-32x32.png", "png", 32),
		square("icon-256x256.png", "png", 256),
		square("linux-512x512.png", "png", 512),
		square("icon.ico", "ico", 48),
		square("icon.icns", "icns", 512),
	},
}

// Targets returns the asset targets for a mode, nil for unknown modes.
// The returned slice is a copy.
func Targets(mode string) []Target {
	return slices.Clone(targets[mode])
}
