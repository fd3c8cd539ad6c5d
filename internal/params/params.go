// Package params implements the CLI parameter validation and normalisation
// pipeline. It is the preflight gate between raw user flags and the asset
// generation pipeline: every value a generator reads has passed its
// validator's full constraint set first.
//
// # Design
//
// Each recognised parameter name maps to a Kind; the pipeline holds a fixed
// Kind-to-validator table built at construction and immutable afterwards.
// Requesting an unknown parameter name fails ParseKind, which guards against
// typos in the calling configuration rather than user input.
//
// Validators run strictly in the caller-supplied order and the first failure
// aborts the rest. Order matters in one place: themeColor must be validated
// before the sibling colour fields, which fall back to its resolved value.
//
// # Error Handling
//
// Validators never terminate the process. All failures wrap one of the
// sentinel errors in errors.go; the CLI driver converts a returned error
// into a diagnostic and a non-zero exit. Use errors.Is() for checks:
//
//	if errors.Is(err, params.ErrInvalidColour) {
//	    // handle bad colour input
//	}
package params

import (
	"errors"
	"fmt"
)

// Kind enumerates the recognised parameters.
type Kind int

const (
	KindProfile Kind = iota
	KindMode
	KindInclude
	KindQuality
	KindFilter
	KindPadding
	KindIcon
	KindBackground
	KindThemeColor
	KindPngColor
	KindSplashscreenColor
	KindSvgColor
	KindSplashscreenIconRatio
	KindOutput
	KindAssets
)

// kinds maps parameter names to their Kind. This is the parameter registry:
// fixed at startup, immutable afterwards.
var kinds = map[string]Kind{
	"profile":               KindProfile,
	"mode":                  KindMode,
	"include":               KindInclude,
	"quality":               KindQuality,
	"filter":                KindFilter,
	"padding":               KindPadding,
	"icon":                  KindIcon,
	"background":            KindBackground,
	"themeColor":            KindThemeColor,
	"pngColor":              KindPngColor,
	"splashscreenColor":     KindSplashscreenColor,
	"svgColor":              KindSvgColor,
	"splashscreenIconRatio": KindSplashscreenIconRatio,
	"output":                KindOutput,
	"assets":                KindAssets,
}

// Order is the canonical validation order for a full invocation.
// themeColor precedes the colour fields that fall back to it.
var Order = []string{
	"profile", "mode", "include", "quality", "filter", "padding",
	"icon", "background",
	"themeColor", "pngColor", "splashscreenColor", "svgColor",
	"splashscreenIconRatio", "output", "assets",
}

// ParseKind resolves a parameter name to its Kind.
// Unknown names are an error: they indicate a typo in the calling code,
// not bad user input.
func ParseKind(name string) (Kind, error) {
	k, ok := kinds[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	return k, nil
}

// Defaults is the default-parameters table consumed by validators.
// Colours are hex digits without the "#" prefix.
type Defaults struct {
	Quality               int
	ThemeColor            string
	PngColor              string
	SplashscreenColor     string
	SvgColor              string
	SplashscreenIconRatio float64
	SampleIcon            string // path of the bundled fallback icon
}

// Options carries the read-only collaborators a pipeline needs.
type Options struct {
	Modes      []string // mode catalogue, ordered
	Generators []string // generator catalogue
	Defaults   Defaults
	BaseDir    string                        // application base directory
	Probe      func(path string) (w, h int)  // PNG dimension probe
	Warn       func(msg string)              // non-fatal warning sink
}

// Pipeline validates and normalises parameter records.
// Construct with New; the validator table is immutable afterwards.
type Pipeline struct {
	opts     Options
	registry map[Kind]func(*Pipeline, Record) error
}

// New builds a pipeline over the given catalogues and collaborators.
func New(opts Options) (*Pipeline, error) {
	if len(opts.Modes) == 0 {
		return nil, errors.New("params: empty mode catalogue")
	}
	if opts.Probe == nil {
		return nil, errors.New("params: nil image probe")
	}
	if opts.Warn == nil {
		opts.Warn = func(string) {}
	}

	p := &Pipeline{opts: opts}
	p.registry = map[Kind]func(*Pipeline, Record) error{
		KindProfile:               (*Pipeline).validateProfile,
		KindMode:                  (*Pipeline).validateMode,
		KindInclude:               (*Pipeline).validateInclude,
		KindQuality:               (*Pipeline).validateQuality,
		KindFilter:                (*Pipeline).validateFilter,
		KindPadding:               (*Pipeline).validatePadding,
		KindIcon:                  (*Pipeline).validateIcon,
		KindBackground:            (*Pipeline).validateBackground,
		KindThemeColor:            colourValidator("themeColor", opts.Defaults.ThemeColor),
		KindPngColor:              colourValidator("pngColor", opts.Defaults.PngColor),
		KindSplashscreenColor:     colourValidator("splashscreenColor", opts.Defaults.SplashscreenColor),
		KindSvgColor:              colourValidator("svgColor", opts.Defaults.SvgColor),
		KindSplashscreenIconRatio: (*Pipeline).validateRatio,
		KindOutput:                (*Pipeline).validateOutput,
		KindAssets:                (*Pipeline).validateAssets,
	}
	return p, nil
}

// Run validates the named parameters in order, normalising rec in place.
// The first failure aborts the remaining validators; rec may then hold a
// mix of normalised and raw values and must not be handed downstream.
func (p *Pipeline) Run(names []string, rec Record) error {
	for _, name := range names {
		kind, err := ParseKind(name)
		if err != nil {
			return err
		}
		if err := p.registry[kind](p, rec); err != nil {
			return err
		}
	}
	return nil
}
