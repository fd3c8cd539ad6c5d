// colour.go implements the shared colour validator factory.
//
// The four colour fields (themeColor, pngColor, splashscreenColor,
// svgColor) share one contract and differ only in name and default, so a
// factory produces each validator. Empty siblings fall back to the
// already-normalised themeColor entry when present, which is why the
// canonical order validates themeColor first.

package params

import (
	"fmt"
	"strings"
)

// isHexColour reports whether s is a 3- or 6-character hexadecimal string.
// Case-insensitive, no "#" prefix: normalisation adds the prefix, so an
// already-normalised value does not re-validate.
func isHexColour(s string) bool {
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// colourValidator builds the validator for one colour field.
//
// Validation rules:
//   - Empty uses the normalised themeColor value if the record has one,
//     otherwise the field's own default
//   - Given values must be 3 or 6 hex characters (case-insensitive)
//   - Normalisation prefixes "#"
func colourValidator(name, fallback string) func(*Pipeline, Record) error {
	return func(_ *Pipeline, rec Record) error {
		v := rec[name]
		if isEmpty(v) {
			if theme, ok := rec["themeColor"].(string); ok && theme != "" && name != "themeColor" {
				rec[name] = theme
			} else {
				rec[name] = "#" + fallback
			}
			return nil
		}

		hex := asString(v)
		if !isHexColour(hex) {
			return fmt.Errorf("%w: %s must be 3 or 6 hex characters, got %q", ErrInvalidColour, name, hex)
		}

		rec[name] = "#" + hex
		return nil
	}
}
