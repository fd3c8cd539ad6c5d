/*
Copyright © 2026 James Tio
*/

// modes.go implements the "iconforge modes" command for catalogue
// inspection.

package cmd

import (
	"fmt"

	"github.com/jamestiotio/iconforge/internal/catalog"
	"github.com/spf13/cobra"
)

var modesCmd = &cobra.Command{
	Use:   "modes [mode]",
	Short: "List the mode catalogue",
	Long: `List the build modes iconforge can generate assets for.

  iconforge modes                # list all modes
  iconforge modes --targets      # list modes with their asset targets
  iconforge modes pwa --targets  # show one mode's targets`,
	Args: cobra.MaximumNArgs(1),
	RunE: runModes,
}

func init() {
	modesCmd.Flags().Bool("targets", false, "Show per-mode asset targets")
	rootCmd.AddCommand(modesCmd)
}

func runModes(c *cobra.Command, args []string) error {
	withTargets, _ := c.Flags().GetBool("targets")

	modes := catalog.Modes()
	if len(args) == 1 {
		if !catalog.IsMode(args[0]) {
			return PrintJSONError(fmt.Errorf("unknown mode: %s (valid: %v)", args[0], modes))
		}
		modes = []string{args[0]}
	}

	if JSON() {
		entries := make([]map[string]any, 0, len(modes))
		for _, m := range modes {
			entry := map[string]any{"mode": m}
			if withTargets {
				entry["targets"] = catalog.Targets(m)
			}
			entries = append(entries, entry)
		}
		return PrintJSON(entries)
	}

	for _, m := range modes {
		fmt.Fprintln(out, m)
		if !withTargets {
			continue
		}
		for _, t := range catalog.Targets(m) {
			fmt.Fprintf(out, "  %-28s %-12s %dx%d\n", t.Name, t.Generator, t.Width, t.Height)
		}
	}
	return nil
}
