/*
Copyright © 2026 James Tio
*/

// guide.go implements the "iconforge guide" command for documentation
// access.
//
// Design: Guides are embedded in the binary via the guide package,
// ensuring documentation is always available without external files.
// Terminal output gets glamour rendering for readability; pipe/redirect
// gets raw markdown for machine consumption and LLM context loading.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jamestiotio/iconforge/guide"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var guideCmd = &cobra.Command{
	Use:   "guide [topic]",
	Short: "Show the iconforge usage guide",
	Long: `Outputs the iconforge guide for LLMs and humans.

  iconforge guide           # main guide
  iconforge guide generate  # detailed generate guide
  iconforge guide profiles  # detailed profiles guide`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}

		content, err := guide.Get(name)
		if err != nil {
			available, listErr := guide.List()
			if listErr != nil {
				return listErr
			}
			return PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
		}

		if term.IsTerminal(int(os.Stdout.Fd())) {
			rendered, err := glamour.Render(content, "dark")
			if err == nil {
				fmt.Fprint(out, rendered)
				return nil
			}
		}

		fmt.Fprint(out, content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
