package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// NewRootCommand creates the base command when called without subcommands
func NewRootCommand(container *CLIContainer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mergeconf",
		Short: "mergeconf - merge ini-style configuration files",
		Long: `mergeconf parses ini-style configuration files and merges them, in the
order given, into a single nested configuration.

Plain assignments (key = value) overwrite earlier values; accumulate
assignments (key += value) append to them, promoting a scalar to a list.
Later files refine earlier ones, so a site-wide base file can be extended
by per-host or per-user overlays.`,
		Version: Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	// Add subcommands
	rootCmd.AddCommand(NewMergeCommand(container))
	rootCmd.AddCommand(NewGetCommand(container))
	rootCmd.AddCommand(NewValidateCommand(container))
	rootCmd.AddCommand(NewInspectCommand(container))

	return rootCmd
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}
