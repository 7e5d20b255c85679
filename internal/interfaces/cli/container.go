package cli

import (
	"mergeconf.dev/cli/internal/fileio"
	"mergeconf.dev/cli/internal/mergeengine"
)

// CLIContainer holds the dependencies shared by CLI commands
type CLIContainer struct {
	// ReadInputs obtains the text of each named configuration file, in
	// order. Tests swap it to avoid touching the filesystem.
	ReadInputs func(paths []string) ([]mergeengine.Input, error)
}

// NewCLIContainer creates a container wired to the real filesystem
func NewCLIContainer() *CLIContainer {
	return &CLIContainer{
		ReadInputs: fileio.ReadAll,
	}
}
