package cli

import (
	"fmt"

	"bennypowers.dev/glaze/internal/registry"
	"github.com/spf13/cobra"
)

// modesCmd lists the supported effect modes and their vocabularies
var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List effect modes and their recognized properties",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, mode := range registry.Modes() {
			fmt.Fprintf(out, "%s:\n", mode)
			for _, property := range registry.Vocabulary(mode) {
				description, _ := registry.Description(mode, property)
				fmt.Fprintf(out, "  %-24s %s\n", property, description)
			}
		}
	},
}
