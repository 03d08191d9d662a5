package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "setupcfg-gen [path]",
	Short: "Generate a declarative setup.cfg from setup.py metadata",
	Long: `setupcfg-gen converts imperative setup.py metadata into a declarative
setup.cfg. It runs 'setup.py egg_info', reads the generated egg-info
directory, and merges the known fields into setup.cfg while keeping any
sections or keys it does not understand.

The conversion operates on the current directory unless a path is given.
An existing setup.cfg is merged into, never discarded.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or ambiguous egg-info directory
  12 - User denied overwrite approval`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runGenerate,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
