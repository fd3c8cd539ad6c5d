/*
Copyright © 2026 James Tio
*/

// generate.go implements the "iconforge generate" command.
//
// The command is a thin driver: flag collection here, validation and
// generation in the service layer. A profile argument can yield several
// validated parameter sets; each runs as its own generation pass.

package cmd

import (
	"fmt"
	"os"

	"github.com/jamestiotio/iconforge/internal/generate"
	"github.com/jamestiotio/iconforge/internal/log"
	"github.com/jamestiotio/iconforge/internal/params"
	"github.com/jamestiotio/iconforge/internal/progress"
	"github.com/jamestiotio/iconforge/internal/service"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate icon and splashscreen assets",
	Long: `Validates every parameter, then renders the asset targets for each
selected mode into <output>/<mode>/, along with a manifest recording
per-asset content digests.

  iconforge generate --icon ./logo.png --output ./dist
  iconforge generate --mode spa,pwa --quality 9 --output ./dist
  iconforge generate --profile ./profiles/web.json --output ./dist`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addParamFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(c *cobra.Command, _ []string) error {
	svc, err := service.New()
	if err != nil {
		return PrintJSONError(err)
	}

	records, err := svc.Validate(collectParams(c))
	log.Event("cli:generate", "validate").Write(err)
	if err != nil {
		return PrintJSONError(err)
	}

	for _, w := range svc.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	var results []*generate.Manifest
	for _, rec := range records {
		manifest, err := generateOne(svc, rec)
		if err != nil {
			return PrintJSONError(err)
		}
		results = append(results, manifest)
	}

	if JSON() {
		return PrintJSON(results)
	}
	for i, m := range results {
		fmt.Fprintf(out, "generated %d assets for %v into %v\n",
			len(m.Assets), m.Modes, records[i]["output"])
	}
	return nil
}

func generateOne(svc *service.Service, rec params.Record) (*generate.Manifest, error) {
	count, err := svc.Count(rec)
	if err != nil {
		return nil, err
	}

	reporter := progress.New("generating", count)
	manifest, err := svc.Generate(rec, reporter.Step)
	reporter.Finish()

	icon, _ := rec["icon"].(string)
	output, _ := rec["output"].(string)
	entry := log.Event("cli:generate", "run").Icon(icon).Output(output)
	if manifest != nil {
		entry = entry.Modes(manifest.Modes).Assets(len(manifest.Assets))
	}
	entry.Write(err)

	return manifest, err
}
