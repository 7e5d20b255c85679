package mergeengine

import (
	"fmt"
	"strings"
)

// PathNotFoundError reports a dotted path that does not resolve to an
// existing entry in a mapping.
type PathNotFoundError struct {
	Path string
}

// Error implements the error interface
func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("path not found: %q", e.Path)
}

// Resolve looks up a dot-delimited path in a mapping: the segments before
// the last dot name the section, the final segment names the key. A path
// with no dot addresses a key in the default section. Resolve is a pure
// function over the plain mapping; it never modifies it.
func Resolve(m *Mapping, path string) (Value, error) {
	section, key := DefaultSection, path
	if i := strings.LastIndex(path, "."); i >= 0 {
		section, key = path[:i], path[i+1:]
	}
	if key == "" {
		return Value{}, &PathNotFoundError{Path: path}
	}

	sec, ok := m.Section(section)
	if !ok {
		return Value{}, &PathNotFoundError{Path: path}
	}
	v, ok := sec.Get(key)
	if !ok {
		return Value{}, &PathNotFoundError{Path: path}
	}
	return v, nil
}
