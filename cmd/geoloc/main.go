// Geoloc resolves the host's approximate geographic location and local time
// zone by querying the ip-api.com line service.
//
// It wraps the asynchronous client library in a small CLI: one-shot lookups,
// a live progress view, and optional system time-zone synchronization from
// the response.
//
// Usage:
//
//	geoloc [command] [flags]
//
// Running without arguments performs a one-shot lookup.
// See 'geoloc --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SergeyF11/espGeoLocation/internal/logging"
	"github.com/SergeyF11/espGeoLocation/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "geoloc",
	Short: "IP geolocation and time zone lookup",
	Long: `Resolve this host's approximate location and local time zone from its
public IP address, using the ip-api.com line service.

If no command is specified, a one-shot lookup is performed.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLocate(cmd, args)
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
		fmt.Printf("geoloc %s (commit: %s)\n", version.Version, version.Commit)
	},
}
