/*
Copyright © 2026 James Tio
*/

// root.go defines the root command and CLI execution entry point.
//
// Design: commands construct the shared service layer themselves rather
// than through a PersistentPreRunE hook, because only generate and verify
// need it; bootstrap commands (guide, config, modes, version) must work
// even when the base directory or config is broken.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jamestiotio/iconforge/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "iconforge",
	Short: "Icon and splashscreen asset generator for app build modes",
	Long:  `Generates the icon and splashscreen asset sets an app needs across its build modes (web favicons, PWA icons, mobile splashscreens, desktop icon bundles) from a single source PNG.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}
		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, executes the command, and exits with code 1 on
// error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	if wd, err := os.Getwd(); err == nil {
		log.SetProject(wd)
	}

	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
