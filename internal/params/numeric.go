// numeric.go implements the numeric validators: quality, padding, and the
// splashscreen icon ratio.
//
// The ratio validator is the one place the absent-versus-zero distinction
// in record.go matters: a user asking for ratio 0 (no icon on the
// splashscreen) must not be handed the default.

package params

import (
	"fmt"
	"strconv"
	"strings"
)

// Inclusive bounds for the numeric parameters.
const (
	minQuality = 1
	maxQuality = 12
	minRatio   = 0.0
	maxRatio   = 100.0
)

// validateQuality parses and bounds the compression quality.
//
// Validation rules:
//   - Empty defaults to the configured quality
//   - Otherwise must parse as an integer in [1, 12]
func (p *Pipeline) validateQuality(rec Record) error {
	v := rec["quality"]
	if isEmpty(v) {
		rec["quality"] = p.opts.Defaults.Quality
		return nil
	}

	s := strings.TrimSpace(asString(v))
	n, err := strconv.Atoi(s)
	if err != nil || n < minQuality || n > maxQuality {
		return fmt.Errorf("%w: quality must be an integer between %d and %d, got %q",
			ErrInvalidNumber, minQuality, maxQuality, s)
	}

	rec["quality"] = n
	return nil
}

// validatePadding parses the two-axis pixel inset.
//
// Validation rules:
//   - Empty defaults to [0, 0]
//   - Accepts an array or comma-separated string of at most two integers
//   - A single value applies to both axes; two values keep their order
//   - Negative or non-numeric values are rejected
func (p *Pipeline) validatePadding(rec Record) error {
	entries := asList(rec["padding"])
	if len(entries) == 0 {
		rec["padding"] = []int{0, 0}
		return nil
	}
	if len(entries) > 2 {
		return fmt.Errorf("%w: at most two values allowed, got %d", ErrInvalidPadding, len(entries))
	}

	vals := make([]int, 0, 2)
	for _, e := range entries {
		n, err := strconv.Atoi(e)
		if err != nil {
			return fmt.Errorf("%w: %q is not an integer", ErrInvalidPadding, e)
		}
		if n < 0 {
			return fmt.Errorf("%w: negative value %d", ErrInvalidPadding, n)
		}
		vals = append(vals, n)
	}
	if len(vals) == 1 {
		vals = append(vals, vals[0])
	}

	rec["padding"] = vals
	return nil
}

// validateRatio parses the splashscreen icon ratio percentage.
//
// Validation rules:
//   - Absent (not the number zero) defaults to the configured ratio
//   - Otherwise must parse as a number in [0, 100]
func (p *Pipeline) validateRatio(rec Record) error {
	v := rec["splashscreenIconRatio"]
	if isEmpty(v) {
		rec["splashscreenIconRatio"] = p.opts.Defaults.SplashscreenIconRatio
		return nil
	}

	s := strings.TrimSpace(asString(v))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < minRatio || f > maxRatio {
		return fmt.Errorf("%w: splashscreen icon ratio must be a number between %g and %g, got %q",
			ErrInvalidNumber, minRatio, maxRatio, s)
	}

	rec["splashscreenIconRatio"] = f
	return nil
}
