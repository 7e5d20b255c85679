package main

import (
	"fmt"
	"os"

	"mergeconf.dev/cli/internal/interfaces/cli"
)

func main() {
	container := cli.NewCLIContainer()
	rootCmd := cli.NewRootCommand(container)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
