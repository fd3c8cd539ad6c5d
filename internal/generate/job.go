// job.go translates a validated parameter record into a typed Job.
//
// Separated from generate.go so the untyped-record boundary lives in one
// place: everything past JobFromRecord works with concrete fields and
// never touches map[string]any again.

package generate

import (
	"fmt"

	"github.com/jamestiotio/iconforge/internal/params"
)

// Job carries the fully validated inputs for one generation run.
type Job struct {
	Icon       string
	Background string
	Output     string

	Quality int
	Padding [2]int

	ThemeColor            string
	PngColor              string
	SplashscreenColor     string
	SvgColor              string
	SplashscreenIconRatio float64

	Modes  []string
	Assets []string
	Filter string
}

// JobFromRecord extracts a Job from a record that has passed the full
// validation pipeline. Fields the pipeline did not populate surface as
// errors here rather than zero values, since a partially validated
// record indicates a wiring mistake in the caller.
func JobFromRecord(rec params.Record) (*Job, error) {
	job := &Job{}

	var err error
	if job.Icon, err = recString(rec, "icon"); err != nil {
		return nil, err
	}
	if job.Output, err = recString(rec, "output"); err != nil {
		return nil, err
	}
	if job.ThemeColor, err = recString(rec, "themeColor"); err != nil {
		return nil, err
	}
	if job.PngColor, err = recString(rec, "pngColor"); err != nil {
		return nil, err
	}
	if job.SplashscreenColor, err = recString(rec, "splashscreenColor"); err != nil {
		return nil, err
	}
	if job.SvgColor, err = recString(rec, "svgColor"); err != nil {
		return nil, err
	}

	// Optional string fields keep their zero value when absent.
	job.Background, _ = rec["background"].(string)
	job.Filter, _ = rec["filter"].(string)

	quality, ok := rec["quality"].(int)
	if !ok {
		return nil, fmt.Errorf("record missing validated quality")
	}
	job.Quality = quality

	padding, ok := rec["padding"].([]int)
	if !ok || len(padding) != 2 {
		return nil, fmt.Errorf("record missing validated padding")
	}
	job.Padding = [2]int{padding[0], padding[1]}

	ratio, ok := rec["splashscreenIconRatio"].(float64)
	if !ok {
		return nil, fmt.Errorf("record missing validated splashscreen icon ratio")
	}
	job.SplashscreenIconRatio = ratio

	modes, ok := rec["mode"].([]string)
	if !ok {
		return nil, fmt.Errorf("record missing validated mode list")
	}
	job.Modes = modes

	if assets, ok := rec["assets"].([]string); ok {
		job.Assets = assets
	}

	return job, nil
}

func recString(rec params.Record, name string) (string, error) {
	s, ok := rec[name].(string)
	if !ok || s == "" {
		return "", fmt.Errorf("record missing validated %s", name)
	}
	return s, nil
}
