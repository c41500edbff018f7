// Package cli provides the command-line interface for glaze.
package cli

import (
	"os"

	"bennypowers.dev/glaze/internal/log"
	"github.com/spf13/cobra"
)

var (
	verbose bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "glaze",
		Short: "Reverse-engineer CSS into typed effect settings",
		Long: `Glaze parses free-form CSS fragments back into strongly-typed,
range-bounded settings records for visual-effect surfaces (liquid glass,
glassmorphism, neumorphism, glow), reporting actionable diagnostics,
unrecognized "ghost" properties, and a WCAG contrast analysis.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.LevelDebug)
			}
		},
	}
)

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(modesCmd)
}
