package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mergeconf.dev/cli/internal/mergeengine"
	"mergeconf.dev/cli/internal/render"
)

// MergeFlags holds command-line flags for the merge command
type MergeFlags struct {
	Format  string
	Output  string
	NoColor bool
}

// NewMergeCommand creates the merge subcommand
func NewMergeCommand(container *CLIContainer) *cobra.Command {
	flags := &MergeFlags{}

	cmd := &cobra.Command{
		Use:   "merge FILE...",
		Short: "Merge configuration files into a single configuration",
		Long: `Merge parses each file and folds it, in argument order, into a single
configuration. Later files overwrite plain assignments and extend
accumulated ones.

Examples:
  mergeconf merge base.conf host.conf
  mergeconf merge --format json base.conf host.conf user.conf
  mergeconf merge --output merged.conf base.conf local.conf`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, container, flags, args)
		},
	}

	cmd.Flags().StringVar(&flags.Format, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flags.Output, "output", "", "Write the merged configuration to a file instead of stdout")
	cmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable styled output")

	return cmd
}

func runMerge(cmd *cobra.Command, container *CLIContainer, flags *MergeFlags, paths []string) error {
	inputs, err := container.ReadInputs(paths)
	if err != nil {
		return err
	}

	mapping, err := mergeengine.Merge(inputs)
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	out, err := renderMapping(mapping, flags)
	if err != nil {
		return err
	}

	if flags.Output != "" {
		return os.WriteFile(flags.Output, out, 0o644)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func renderMapping(mapping *mergeengine.Mapping, flags *MergeFlags) ([]byte, error) {
	switch flags.Format {
	case "text":
		// Color only makes sense on a terminal, never in a file.
		color := !flags.NoColor && flags.Output == ""
		return []byte(render.Text(mapping, color)), nil
	case "json":
		out, err := render.JSON(mapping)
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format: %q (expected text or json)", flags.Format)
	}
}
