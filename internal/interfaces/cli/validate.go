package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mergeconf.dev/cli/internal/parser"
)

// NewValidateCommand creates the validate subcommand
func NewValidateCommand(container *CLIContainer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check configuration files for syntax errors",
		Long: `Validate tokenizes each file independently and reports the first
malformed line per file, identified by path and line number. Files are
not merged, so every named file is checked even when an earlier one fails.

Example:
  mergeconf validate base.conf host.conf user.conf`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, container, args)
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, container *CLIContainer, paths []string) error {
	inputs, err := container.ReadInputs(paths)
	if err != nil {
		return err
	}

	failed := 0
	for _, in := range inputs {
		if _, err := parser.Parse(in.Text); err != nil {
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", in.ID, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", in.ID)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed validation", failed, len(inputs))
	}
	return nil
}
