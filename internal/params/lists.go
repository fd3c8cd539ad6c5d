// lists.go implements the catalogue-membership validators: mode, include,
// and assets. All three accept comma-separated lists (or string slices)
// checked against the mode catalogue, with "all" expanding to the full
// catalogue, but they differ in what an empty value means and in what gets
// stored back into the record.

package params

import (
	"fmt"
	"slices"
)

// validateMode normalises the target mode list.
//
// Validation rules:
//   - Empty defaults to the full mode catalogue
//   - "all" anywhere in the list expands to the full catalogue
//   - Every other entry must name a known mode
func (p *Pipeline) validateMode(rec Record) error {
	entries := asList(rec["mode"])
	if len(entries) == 0 || slices.Contains(entries, "all") {
		rec["mode"] = slices.Clone(p.opts.Modes)
		return nil
	}

	for _, m := range entries {
		if !slices.Contains(p.opts.Modes, m) {
			return fmt.Errorf("%w: %s", ErrUnknownMode, m)
		}
	}
	rec["mode"] = entries
	return nil
}

// validateInclude checks the include list against the mode catalogue.
//
// Validation rules:
//   - Empty passes untouched
//   - "all" anywhere in the list passes without further checks
//   - Every other entry must name a known mode
//
// Note: unlike mode and assets, the expanded list is checked but never
// written back to the record. Downstream consumers never read an
// "include" key, and storing one now would change the record shape they
// receive, so the historical check-only behaviour is kept.
func (p *Pipeline) validateInclude(rec Record) error {
	entries := asList(rec["include"])
	if len(entries) == 0 || slices.Contains(entries, "all") {
		return nil
	}

	for _, m := range entries {
		if !slices.Contains(p.opts.Modes, m) {
			return fmt.Errorf("%w: %s", ErrUnknownMode, m)
		}
	}
	return nil
}

// validateAssets normalises the extra asset-family list.
//
// Validation rules:
//   - Empty normalises to an empty list (no extra families)
//   - "all" anywhere in the list expands to the full mode catalogue
//   - Every other entry must name a known mode
func (p *Pipeline) validateAssets(rec Record) error {
	entries := asList(rec["assets"])
	if len(entries) == 0 {
		rec["assets"] = []string{}
		return nil
	}
	if slices.Contains(entries, "all") {
		rec["assets"] = slices.Clone(p.opts.Modes)
		return nil
	}

	for _, m := range entries {
		if !slices.Contains(p.opts.Modes, m) {
			return fmt.Errorf("%w: %s", ErrUnknownMode, m)
		}
	}
	rec["assets"] = entries
	return nil
}

// validateFilter checks the generator filter names a known generator.
// Validation only: the raw value stays in the record untouched.
func (p *Pipeline) validateFilter(rec Record) error {
	v := rec["filter"]
	if isEmpty(v) {
		return nil
	}

	name := asString(v)
	if !slices.Contains(p.opts.Generators, name) {
		return fmt.Errorf("%w: %s", ErrUnknownGenerator, name)
	}
	return nil
}
