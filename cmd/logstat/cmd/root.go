// Package cmd contains the CLI commands for logstat.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Used for flags
	verbose bool
	output  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "logstat",
	Short: "logstat - structured access log statistics",
	Long: `logstat computes aggregate statistics over newline-delimited JSON
access logs in a single streaming pass.

Reported statistics:
  - total request count
  - average response time in milliseconds
  - status code distribution
  - busiest hour of day

Examples:
  # Analyze an access log and print JSON statistics
  logstat analyze /var/log/app/access.log

  # Human-readable summary
  logstat analyze /var/log/app/access.log -o table

  # Logs with non-standard field names
  logstat analyze access.log --fields fields.yaml`,
	// Run when no subcommand is specified
	Run: func(cmd *cobra.Command, args []string) {
		// Show help by default
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "json", "output format (json, table, plain)")
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}

// GetOutput returns the output format.
func GetOutput() string {
	return output
}

// PrintVerbose prints a message to stderr only if verbose mode is enabled.
func PrintVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
