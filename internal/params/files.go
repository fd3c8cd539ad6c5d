// files.go implements the path-valued validators: profile, icon,
// background, and output.
//
// These are the only validators with side effects beyond the record -
// filesystem stats and PNG header probes run synchronously here, so a
// record that validated cleanly refers to files that existed at
// validation time.

package params

import (
	"fmt"
	"os"
	"strings"

	"github.com/jamestiotio/iconforge/internal/path"
)

// Minimum source dimensions. Icons scale down from the source, so the
// source must cover the smallest acceptable quality floor; splashscreen
// backgrounds cover larger canvases and need more.
const (
	minIconSize       = 64
	minBackgroundSize = 128
)

// validateProfile resolves and checks the profile path.
//
// Validation rules:
//   - Absent values pass untouched (no profile in use)
//   - "~" expands; relative paths resolve against the working directory
//   - The resolved path must exist
//   - The value must end in ".json" or resolve to a directory
func (p *Pipeline) validateProfile(rec Record) error {
	v := rec["profile"]
	if isEmpty(v) {
		return nil
	}

	resolved, err := path.Resolve(asString(v))
	if err != nil {
		return fmt.Errorf("%w: profile: %v", ErrInvalidPath, err)
	}
	st, err := os.Stat(resolved)
	if err != nil {
		return fmt.Errorf("%w: profile %s does not exist", ErrInvalidPath, resolved)
	}
	if !strings.HasSuffix(resolved, ".json") && !st.IsDir() {
		return fmt.Errorf("%w: profile must be a .json file or a directory: %s", ErrInvalidPath, resolved)
	}

	rec["profile"] = resolved
	return nil
}

// validateIcon resolves the source icon and checks it is a usable PNG.
//
// Validation rules:
//   - Absent values fall back to the bundled sample icon, with a warning
//   - Given values expand "~", then resolve as absolute path, relative to
//     the working directory, then relative to the application base dir
//   - The resolved file must be a PNG of at least 64x64 pixels
func (p *Pipeline) validateIcon(rec Record) error {
	v := rec["icon"]
	if isEmpty(v) {
		rec["icon"] = p.opts.Defaults.SampleIcon
		p.opts.Warn("no icon supplied, using the bundled sample icon")
		return nil
	}

	resolved, err := path.FindFile(asString(v), p.opts.BaseDir)
	if err != nil {
		return fmt.Errorf("%w: icon %s not found", ErrInvalidPath, asString(v))
	}

	w, h := p.opts.Probe(resolved)
	if w == 0 && h == 0 {
		return fmt.Errorf("%w: icon %s is not a png", ErrInvalidImage, resolved)
	}
	if w < minIconSize || h < minIconSize {
		return fmt.Errorf("%w: icon must be at least %dx%d, got %dx%d",
			ErrInvalidImage, minIconSize, minIconSize, w, h)
	}

	rec["icon"] = resolved
	return nil
}

// validateBackground resolves the splashscreen background image.
//
// Validation rules:
//   - Absent values pass untouched (solid colour splashscreens)
//   - "~" expands; relative paths resolve against the application base dir
//   - The resolved path must exist, probe as a PNG, and be at least 128x128
func (p *Pipeline) validateBackground(rec Record) error {
	v := rec["background"]
	if isEmpty(v) {
		return nil
	}

	resolved := path.InBase(asString(v), p.opts.BaseDir)
	if _, err := os.Stat(resolved); err != nil {
		return fmt.Errorf("%w: background %s does not exist", ErrInvalidPath, resolved)
	}

	w, h := p.opts.Probe(resolved)
	if w == 0 && h == 0 {
		return fmt.Errorf("%w: background %s is not a png", ErrInvalidImage, resolved)
	}
	if w < minBackgroundSize || h < minBackgroundSize {
		return fmt.Errorf("%w: background must be at least %dx%d, got %dx%d",
			ErrInvalidImage, minBackgroundSize, minBackgroundSize, w, h)
	}

	rec["background"] = resolved
	return nil
}

// validateOutput checks the output directory was supplied.
// Presence only: the generation pipeline creates the directory itself,
// so no filesystem check or normalisation happens here.
func (p *Pipeline) validateOutput(rec Record) error {
	if isEmpty(rec["output"]) {
		return ErrMissingOutput
	}
	return nil
}
