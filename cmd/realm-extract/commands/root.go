// Package commands implements realm-extract's CLI surface.
package commands

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "realm-extract <path|->",
	Short: "Extract packet mappings and parameters from a Flash client binary",
	Long: `realm-extract reads a compiled client SWF, locates the
GameServerConnection and Parameters classes in its ABC bytecode, and
prints the extracted packet wire-ID mappings and client parameters.

Examples:
  realm-extract client.swf
  cat client.swf | realm-extract --parameters -
  realm-extract --format table --mappings --parameters client.swf`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called once from main.main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
