// Confspect is a configuration discovery and inspection utility for
// well-known developer applications.
//
// It resolves where applications keep their configuration files, reads and
// parses them (JSON, property lists, YAML, TOML, plain text), and searches
// inside them. The same capabilities are exposed to MCP clients via
// 'confspect serve' and interactively via 'confspect browse'.
//
// Usage:
//
//	confspect [command] [flags]
//
// Running without arguments launches the interactive browser.
// See 'confspect --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/confspect/confspect/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "confspect",
	Short: "Application Configuration Explorer",
	Long: `Discover, read and search the configuration files of well-known
developer applications (editors, shells, terminal tools).

Run 'confspect serve' to expose the same capabilities to MCP clients
over stdio. If no command is specified, the interactive browser launches.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the browser when no subcommand provided
		return runBrowse(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("confspect %s (commit: %s)\n", version.Version, version.Commit)
	},
}
