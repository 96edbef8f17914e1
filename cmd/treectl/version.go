package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version may be overridden at link time; otherwise the module version
// recorded in the binary's build info is reported.
var version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		v, revision, modified := buildVersion()
		fmt.Printf("treectl %s\n", v)
		if revision != "" {
			if modified {
				revision += " (modified)"
			}
			fmt.Printf("  commit: %s\n", revision)
		}
	},
}

// buildVersion resolves the version string and vcs revision from the
// embedded build info.
func buildVersion() (v, revision string, modified bool) {
	v = version
	info, ok := debug.ReadBuildInfo()
	if !ok {
		if v == "" {
			v = "unknown"
		}
		return v, "", false
	}
	if v == "" {
		v = info.Main.Version
	}
	if v == "" {
		v = "unknown"
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	return v, revision, modified
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
