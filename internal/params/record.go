// record.go defines the parameter record and raw-value coercion helpers.
//
// Raw CLI input arrives loosely typed: a value may be absent, a string, a
// list of strings, or an already-numeric value (profiles store numbers as
// numbers). The helpers here collapse those shapes into the string or list
// form a validator needs, with one deliberate wrinkle: numeric zero is a
// real value, never "absent". The splashscreen ratio depends on that.

package params

import (
	"strconv"
	"strings"
)

// Record holds the parameter set for one invocation. Raw values go in and
// validators normalise them in place; once a validator returns nil its key
// holds the fully checked, normalised value. One record per invocation,
// never shared between goroutines.
type Record map[string]any

// isEmpty reports whether a raw value counts as absent.
func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []string:
		return len(t) == 0
	default:
		// numbers (including zero) are real values
		return false
	}
}

// asString coerces a raw value to its string form.
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []string:
		return strings.Join(t, ",")
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// asList coerces a raw value to a list of trimmed, non-empty entries.
// Strings split on commas; string slices additionally split each element
// so {"a,b", "c"} and "a,b,c" are equivalent.
func asList(v any) []string {
	var raw []string
	switch t := v.(type) {
	case string:
		raw = strings.Split(t, ",")
	case []string:
		for _, e := range t {
			raw = append(raw, strings.Split(e, ",")...)
		}
	default:
		if s := asString(v); s != "" {
			raw = strings.Split(s, ",")
		}
	}

	out := make([]string, 0, len(raw))
	for _, e := range raw {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}
