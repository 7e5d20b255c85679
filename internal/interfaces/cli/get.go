package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mergeconf.dev/cli/internal/mergeengine"
)

// GetFlags holds command-line flags for the get command
type GetFlags struct {
	JSON bool
}

// NewGetCommand creates the get subcommand
func NewGetCommand(container *CLIContainer) *cobra.Command {
	flags := &GetFlags{}

	cmd := &cobra.Command{
		Use:   "get PATH FILE...",
		Short: "Look up one dotted path in the merged configuration",
		Long: `Get merges the files in argument order and resolves a dot-delimited
path: the segments before the last dot name the section, the final
segment names the key. A path with no dot addresses the default section.

Lists print one element per line.

Examples:
  mergeconf get server.port base.conf host.conf
  mergeconf get --json server.listen base.conf host.conf`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, container, flags, args[0], args[1:])
		},
	}

	cmd.Flags().BoolVar(&flags.JSON, "json", false, "Print the value as JSON")

	return cmd
}

func runGet(cmd *cobra.Command, container *CLIContainer, flags *GetFlags, path string, paths []string) error {
	inputs, err := container.ReadInputs(paths)
	if err != nil {
		return err
	}

	mapping, err := mergeengine.Merge(inputs)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	value, err := mergeengine.Resolve(mapping, path)
	if err != nil {
		return err
	}

	if flags.JSON {
		out, err := value.MarshalJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(value.Strings(), "\n"))
	return nil
}
