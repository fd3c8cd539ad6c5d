/*
Copyright © 2026 James Tio
*/

// verify.go implements the "iconforge verify" command.
//
// Three forms share the name because they answer the same question - "is
// this generation setup sound?" - at different stages. With no argument,
// verify runs the full parameter pipeline and reports the normalised
// values without touching the filesystem. With a PNG file argument, it
// probes and prints the image dimensions. With an output directory
// argument, it re-reads the run manifest and checks every recorded asset
// against its content digest.

package cmd

import (
	"fmt"
	"os"

	"github.com/jamestiotio/iconforge/internal/generate"
	"github.com/jamestiotio/iconforge/internal/imgsize"
	"github.com/jamestiotio/iconforge/internal/log"
	"github.com/jamestiotio/iconforge/internal/service"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [output-dir]",
	Short: "Verify parameters or a generated asset set",
	Long: `Verify generation parameters, a source image, or a generated asset set.

  iconforge verify --icon ./logo.png --output ./dist   # validate parameters
  iconforge verify ./logo.png                          # probe PNG dimensions
  iconforge verify ./dist                              # check generated assets`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	addParamFlags(verifyCmd)
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(c *cobra.Command, args []string) error {
	if len(args) == 1 {
		if st, err := os.Stat(args[0]); err == nil && st.Mode().IsRegular() {
			return verifyImage(args[0])
		}
		return verifyManifest(args[0])
	}
	return verifyParams(c)
}

// verifyImage probes a source image's PNG dimensions.
func verifyImage(path string) error {
	w, h := imgsize.PNG(path)
	log.Event("cli:verify", "probe").Icon(path).Write(nil)

	if w == 0 && h == 0 {
		return PrintJSONError(fmt.Errorf("%s: not a PNG image", path))
	}

	if JSON() {
		return PrintJSON(map[string]any{"path": path, "width": w, "height": h})
	}
	fmt.Fprintf(out, "%s: %dx%d PNG\n", path, w, h)
	return nil
}

// verifyParams runs the validation pipeline only.
func verifyParams(c *cobra.Command) error {
	svc, err := service.New()
	if err != nil {
		return PrintJSONError(err)
	}

	records, err := svc.Validate(collectParams(c))
	log.Event("cli:verify", "validate").Write(err)
	if err != nil {
		return PrintJSONError(err)
	}

	if JSON() {
		return PrintJSON(map[string]any{
			"valid":    true,
			"params":   records,
			"warnings": svc.Warnings(),
		})
	}

	for _, w := range svc.Warnings() {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	fmt.Fprintln(out, "parameters valid")
	return nil
}

// verifyManifest checks a previous run's assets against the manifest.
func verifyManifest(dir string) error {
	manifest, err := generate.ReadManifest(dir)
	log.Event("cli:verify", "manifest").Output(dir).Write(err)
	if err != nil {
		return PrintJSONError(fmt.Errorf("reading manifest: %w", err))
	}

	stale := manifest.Check(dir)

	if JSON() {
		return PrintJSON(map[string]any{
			"assets": len(manifest.Assets),
			"stale":  stale,
			"valid":  len(stale) == 0,
		})
	}

	if len(stale) == 0 {
		fmt.Fprintf(out, "%d assets verified\n", len(manifest.Assets))
		return nil
	}
	for _, p := range stale {
		fmt.Fprintf(out, "stale: %s\n", p)
	}
	return fmt.Errorf("%d of %d assets stale", len(stale), len(manifest.Assets))
}
