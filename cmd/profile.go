/*
Copyright © 2026 James Tio
*/

// profile.go implements the "iconforge profile" command group: saving,
// inspecting and comparing parameter profiles.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jamestiotio/iconforge/internal/log"
	"github.com/jamestiotio/iconforge/internal/profile"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Save, inspect and compare parameter profiles",
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

var profileSaveCmd = &cobra.Command{
	Use:   "save <file>",
	Short: "Save the given parameter flags as a profile",
	Long: `Save the given parameter flags as a reusable profile.

  iconforge profile save ./profiles/web.json --mode spa,pwa --quality 9

Profiles store the raw flag values; validation happens fresh on every
use, so a profile travels between machines and projects.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileSave,
}

var profileShowCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Show a saved profile's parameters",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileShow,
}

var profileDiffCmd = &cobra.Command{
	Use:   "diff <file> <file>",
	Short: "Compare two profiles parameter by parameter",
	Args:  cobra.ExactArgs(2),
	RunE:  runProfileDiff,
}

func init() {
	addParamFlags(profileSaveCmd)
	profileSaveCmd.Flags().String("name", "", "Profile name (stored in the file)")

	profileCmd.AddCommand(profileSaveCmd, profileShowCmd, profileDiffCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileSave(c *cobra.Command, args []string) error {
	name, _ := c.Flags().GetString("name")

	p := profile.New(name, collectParams(c))
	path, err := p.Save(args[0])

	log.Event("cli:profile", "save").Detail("path", path).Write(err)

	if err != nil {
		return PrintJSONError(err)
	}

	if JSON() {
		return PrintJSON(map[string]string{"path": path})
	}
	fmt.Fprintf(out, "saved profile %s\n", path)
	return nil
}

func runProfileShow(_ *cobra.Command, args []string) error {
	p, err := profile.Load(args[0])

	log.Event("cli:profile", "show").Detail("path", args[0]).Write(err)

	if err != nil {
		return PrintJSONError(err)
	}

	if JSON() {
		return PrintJSON(p)
	}

	if p.Name != "" {
		fmt.Fprintf(out, "name: %s\n", p.Name)
	}
	for _, k := range sortedKeys(p.Params) {
		fmt.Fprintf(out, "%s: %s\n", k, p.Params[k])
	}
	return nil
}

func runProfileDiff(_ *cobra.Command, args []string) error {
	r, err := profile.Diff(args[0], args[1])

	log.Event("cli:profile", "diff").Detail("a", args[0]).Detail("b", args[1]).Write(err)

	if err != nil {
		return PrintJSONError(err)
	}

	if JSON() {
		return PrintJSON(map[string]any{
			"old":       r.Old,
			"new":       r.New,
			"diff":      r.Diff,
			"identical": r.Empty(),
		})
	}

	if r.Empty() {
		fmt.Fprintln(out, "profiles are identical")
		return nil
	}

	colour := term.IsTerminal(int(os.Stdout.Fd()))
	fmt.Fprint(out, r.Format(colour))
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
