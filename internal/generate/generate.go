// Package generate produces the asset files for a validated job.
//
// Each output format is handled by a Generator registered in the package
// registry (see registry.go). Run walks the target catalogue for the
// job's modes, dispatches each target to its generator, writes the
// encoded bytes under <output>/<mode>/, and records a manifest entry
// with a content digest for later verification.
package generate

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/jamestiotio/iconforge/internal/catalog"
)

// Generator encodes one output format. Implementations return the
// complete file contents for a single target; Run owns all filesystem
// writes.
type Generator interface {
	// Name returns the generator's catalogue name (e.g. "png", "ico").
	Name() string

	// Generate renders the target from the decoded source images.
	Generate(job *Job, src *Source, target catalog.Target) ([]byte, error)
}

// Source holds the decoded input images, shared across all targets of a
// run so the icon is decoded exactly once.
type Source struct {
	Icon       image.Image
	Background image.Image // nil when no background was supplied
}

// Run generates all assets for the job. step, when non-nil, is invoked
// with the relative path of each asset as it is written.
func Run(job *Job, step func(name string)) (*Manifest, error) {
	src, err := loadSource(job)
	if err != nil {
		return nil, err
	}

	modes := runModes(job)

	manifest := &Manifest{
		Icon:    job.Icon,
		Quality: job.Quality,
		Modes:   modes,
	}

	for _, mode := range modes {
		dir := filepath.Join(job.Output, mode)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}

		for _, target := range catalog.Targets(mode) {
			if job.Filter != "" && job.Filter != target.Generator {
				continue
			}

			gen := Get(target.Generator)
			if gen == nil {
				return nil, fmt.Errorf("no generator registered for %q", target.Generator)
			}

			data, err := gen.Generate(job, src, target)
			if err != nil {
				return nil, fmt.Errorf("generating %s/%s: %w", mode, target.Name, err)
			}

			if err := os.WriteFile(filepath.Join(dir, target.Name), data, 0o644); err != nil {
				return nil, fmt.Errorf("writing %s/%s: %w", mode, target.Name, err)
			}

			rel := filepath.Join(mode, target.Name)
			manifest.Assets = append(manifest.Assets, Asset{
				Path:      rel,
				Generator: target.Generator,
				Width:     target.Width,
				Height:    target.Height,
				Size:      len(data),
				Digest:    digest(data),
			})
			if step != nil {
				step(rel)
			}
		}
	}

	if err := manifest.Write(job.Output); err != nil {
		return nil, err
	}
	return manifest, nil
}

// Count reports how many assets Run would produce for the job, so
// progress reporting can size itself before any work happens.
func Count(job *Job) int {
	n := 0
	for _, mode := range runModes(job) {
		for _, target := range catalog.Targets(mode) {
			if job.Filter != "" && job.Filter != target.Generator {
				continue
			}
			n++
		}
	}
	return n
}

// runModes merges the job's modes with any extra asset modes, preserving
// catalogue order and dropping duplicates.
func runModes(job *Job) []string {
	want := make(map[string]bool, len(job.Modes)+len(job.Assets))
	for _, m := range job.Modes {
		want[m] = true
	}
	for _, m := range job.Assets {
		want[m] = true
	}

	var modes []string
	for _, m := range catalog.Modes() {
		if want[m] {
			modes = append(modes, m)
		}
	}
	return modes
}

func loadSource(job *Job) (*Source, error) {
	icon, err := decodePNG(job.Icon)
	if err != nil {
		return nil, fmt.Errorf("decoding icon: %w", err)
	}

	src := &Source{Icon: icon}
	if job.Background != "" {
		bg, err := decodePNG(job.Background)
		if err != nil {
			return nil, fmt.Errorf("decoding background: %w", err)
		}
		src.Background = bg
	}
	return src, nil
}

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}
