package commands

import (
	"github.com/simonhull/firebird-suite/quill"
	"github.com/simonhull/firebird-suite/quill/output"
	"github.com/simonhull/firebird-suite/quill/prompt"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the quill demo CLI
func RootCmd() *cobra.Command {
	var verbose, noColor bool

	cmd := &cobra.Command{
		Use:   "quill",
		Short: "Interactive terminal prompts for the Firebird Suite",
		Long: `Quill collects, validates, and returns typed values from an operator
at a terminal: text, passwords, numbers, confirmations, menus,
autocomplete, and a filepath browser.

This binary is a gallery: run the demo to try every prompt kind.

Learn more: https://github.com/simonhull/firebird-suite`,
		Version: quill.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
			cfg := LoadConfig()
			if noColor || cfg.NoColor {
				prompt.SetColorEnabled(false)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}
