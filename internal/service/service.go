// Package service wires the parameter pipeline, the mode catalogue, the
// generator registry and the configuration into the operations the CLI
// and the MCP server share. Commands depend on this layer rather than
// assembling the collaborators themselves, so both entry points validate
// and generate identically.
package service

import (
	"fmt"
	"path/filepath"

	"github.com/jamestiotio/iconforge/internal/catalog"
	"github.com/jamestiotio/iconforge/internal/config"
	"github.com/jamestiotio/iconforge/internal/generate"
	"github.com/jamestiotio/iconforge/internal/imgsize"
	"github.com/jamestiotio/iconforge/internal/params"
	"github.com/jamestiotio/iconforge/internal/path"
	"github.com/jamestiotio/iconforge/internal/profile"
)

// sampleIcon is the bundled fallback icon, relative to the base directory.
const sampleIcon = "samples/app-icon.png"

// Service exposes the shared parameter and generation operations.
type Service struct {
	pipeline *params.Pipeline
	warnings []string
}

// New loads the configuration and assembles the validation pipeline.
func New() (*Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	base := path.BaseDir()

	s := &Service{}
	s.pipeline, err = params.New(params.Options{
		Modes:      catalog.Modes(),
		Generators: generate.Names(),
		BaseDir:    base,
		Probe:      imgsize.PNG,
		Warn:       func(msg string) { s.warnings = append(s.warnings, msg) },
		Defaults: params.Defaults{
			Quality:               cfg.Quality(),
			ThemeColor:            cfg.ThemeColor(),
			PngColor:              cfg.PngColor(),
			SplashscreenColor:     cfg.SplashscreenColor(),
			SvgColor:              cfg.SvgColor(),
			SplashscreenIconRatio: cfg.SplashscreenIconRatio(),
			SampleIcon:            filepath.Join(base, sampleIcon),
		},
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Warnings returns the non-fatal warnings accumulated by validation runs,
// in emission order.
func (s *Service) Warnings() []string {
	return s.warnings
}

// Validate runs the full pipeline over one raw parameter set. When a
// profile argument is present, the profile's saved parameters seed every
// key the raw set leaves empty; explicitly supplied flags always win.
// Each loaded profile yields its own validated record.
func (s *Service) Validate(raw map[string]string) ([]params.Record, error) {
	if raw["profile"] == "" {
		rec := recordFrom(raw)
		if err := s.pipeline.Run(params.Order, rec); err != nil {
			return nil, err
		}
		return []params.Record{rec}, nil
	}

	// Validate the profile argument through its own pipeline validator
	// first; its normalised value is the resolved filesystem path.
	probe := params.Record{"profile": raw["profile"]}
	if err := s.pipeline.Run([]string{"profile"}, probe); err != nil {
		return nil, err
	}
	profilePath, _ := probe["profile"].(string)

	profiles, err := profile.LoadAll(profilePath)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	records := make([]params.Record, 0, len(profiles))
	for _, p := range profiles {
		merged := make(map[string]string, len(raw)+len(p.Params))
		for k, v := range p.Params {
			merged[k] = v
		}
		for k, v := range raw {
			if v != "" {
				merged[k] = v
			}
		}

		rec := recordFrom(merged)
		if err := s.pipeline.Run(params.Order, rec); err != nil {
			if p.Name != "" {
				return nil, fmt.Errorf("profile %s: %w", p.Name, err)
			}
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Generate runs asset generation for one validated record. step, when
// non-nil, is invoked per written asset.
func (s *Service) Generate(rec params.Record, step func(name string)) (*generate.Manifest, error) {
	job, err := generate.JobFromRecord(rec)
	if err != nil {
		return nil, err
	}
	return generate.Run(job, step)
}

// Count reports how many assets a validated record would generate.
func (s *Service) Count(rec params.Record) (int, error) {
	job, err := generate.JobFromRecord(rec)
	if err != nil {
		return 0, err
	}
	return generate.Count(job), nil
}

func recordFrom(raw map[string]string) params.Record {
	rec := make(params.Record, len(raw))
	for k, v := range raw {
		if v != "" {
			rec[k] = v
		}
	}
	return rec
}
