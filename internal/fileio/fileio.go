// Package fileio reads configuration files from disk on behalf of the
// merge engine, which itself performs no I/O.
package fileio

import (
	"fmt"
	"os"

	"mergeconf.dev/cli/internal/mergeengine"
)

// ReadAll reads each named file, in order, into merge inputs identified
// by their path. The first unreadable file aborts with an error naming it.
func ReadAll(paths []string) ([]mergeengine.Input, error) {
	inputs := make([]mergeengine.Input, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		inputs = append(inputs, mergeengine.Input{ID: path, Text: string(data)})
	}
	return inputs, nil
}

// MergeFiles reads the named files and merges them in argument order
func MergeFiles(paths []string) (*mergeengine.Mapping, error) {
	inputs, err := ReadAll(paths)
	if err != nil {
		return nil, err
	}
	return mergeengine.Merge(inputs)
}
