package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes: invalid titles are distinct from environment problems so CI
// can tell a rejected title apart from a broken setup.
const (
	ExitSuccess      = 0
	ExitInvalid      = 1
	ExitUsageError   = 2
	ExitAuthError    = 3
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "titlelint",
	Short: "Conventional Commits title checker",
	Long:  "Titlelint validates pull request titles and commit subjects against the Conventional Commits format and emits structured verdicts with deterministic exit codes.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(commitCmd)
	rootCmd.AddCommand(rangeCmd)
	rootCmd.AddCommand(prCmd)
	rootCmd.AddCommand(eventCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print titlelint version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "titlelint version %s\n", version)
	},
}
