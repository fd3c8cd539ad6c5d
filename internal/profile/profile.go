// Package profile persists generation parameters as JSON files so a run
// can be repeated or shared. Profiles store the raw flag values exactly
// as the user supplied them, not the normalised results: normalisation
// happens on every load, so a profile written by one machine validates
// against another machine's filesystem and catalogue.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jamestiotio/iconforge/internal/diff"
)

// Profile is one saved parameter set.
type Profile struct {
	Name      string            `json:"name,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	Params    map[string]string `json:"params"`
}

// New builds a profile from raw flag values, dropping empty ones.
func New(name string, params map[string]string) *Profile {
	p := &Profile{
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Params:    make(map[string]string, len(params)),
	}
	for k, v := range params {
		if v != "" {
			p.Params[k] = v
		}
	}
	return p
}

// Save writes the profile to path. A ".json" extension is appended when
// missing so saved profiles always pass the profile path validation.
func (p *Profile) Save(path string) (string, error) {
	if !strings.HasSuffix(path, ".json") {
		path += ".json"
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding profile: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating profile directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing profile: %w", err)
	}
	return path, nil
}

// Load reads a single profile file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	if p.Params == nil {
		p.Params = make(map[string]string)
	}
	return &p, nil
}

// LoadAll resolves a profile argument the way the generate command does:
// a .json file loads directly, a directory loads every .json file within
// it (sorted by name, non-recursive).
func LoadAll(path string) ([]*Profile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		p, err := Load(path)
		if err != nil {
			return nil, err
		}
		return []*Profile{p}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	var profiles []*Profile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		p, err := Load(filepath.Join(path, e.Name()))
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("no profiles found in %s", path)
	}
	return profiles, nil
}

// Diff compares two profile files parameter by parameter. Both sides are
// rendered in sorted-key form first so ordering differences in the files
// themselves never show up as changes.
func Diff(pathA, pathB string) (diff.Result, error) {
	a, err := Load(pathA)
	if err != nil {
		return diff.Result{}, err
	}
	b, err := Load(pathB)
	if err != nil {
		return diff.Result{}, err
	}

	return diff.Compute(a.render(), b.render(), pathA, pathB), nil
}

// render produces the canonical text form used for diffing.
func (p *Profile) render() string {
	data, _ := json.MarshalIndent(p.Params, "", "  ")
	return string(data) + "\n"
}
