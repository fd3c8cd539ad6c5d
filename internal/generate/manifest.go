// manifest.go records what a generation run produced. The manifest is
// written alongside the assets and drives the verify command's on-disk
// checks.

package generate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ManifestName is the filename of the run manifest within the output
// directory.
const ManifestName = "iconforge-manifest.json"

// Manifest summarises one generation run.
type Manifest struct {
	GeneratedAt time.Time `json:"generated_at"`
	Icon        string    `json:"icon"`
	Quality     int       `json:"quality"`
	Modes       []string  `json:"modes"`
	Assets      []Asset   `json:"assets"`
}

// Asset describes a single generated file, with a content digest so a
// later verify pass can detect modified or truncated assets.
type Asset struct {
	Path      string `json:"path"`
	Generator string `json:"generator"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Size      int    `json:"size"`
	Digest    string `json:"digest"`
}

// Write stores the manifest in dir, stamping the generation time.
func (m *Manifest) Write(dir string) error {
	m.GeneratedAt = time.Now().UTC()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(filepath.Join(dir, ManifestName), data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// ReadManifest loads the manifest from a previous run's output directory.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// Check re-reads every asset listed in the manifest and reports the
// relative paths whose contents no longer match their recorded digest,
// including assets that have gone missing.
func (m *Manifest) Check(dir string) []string {
	var stale []string
	for _, a := range m.Assets {
		data, err := os.ReadFile(filepath.Join(dir, a.Path))
		if err != nil || digest(data) != a.Digest {
			stale = append(stale, a.Path)
		}
	}
	return stale
}
