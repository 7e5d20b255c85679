// Package mergeengine folds tokenized ini-style inputs, in caller order,
// into a single nested configuration mapping.
package mergeengine

import (
	"fmt"

	"mergeconf.dev/cli/internal/parser"
)

// Input is one source text to merge, identified for error reporting
type Input struct {
	ID   string
	Text string
}

// Merge tokenizes each input and applies its lines, strictly in the order
// given, to a fresh Mapping. The first malformed line anywhere aborts the
// merge with an error carrying the source identifier and line number; there
// is no partial result. Merging the same ordered inputs twice yields equal
// mappings.
func Merge(inputs []Input) (*Mapping, error) {
	m := NewMapping()
	for _, in := range inputs {
		if err := mergeOne(m, in); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func mergeOne(m *Mapping, in Input) error {
	section := DefaultSection

	err := parser.Scan(in.Text, func(ln parser.Line) error {
		switch ln.Kind {
		case parser.KindSection:
			section = ln.Section
			m.ensure(section)
		case parser.KindAssignment:
			apply(m.ensure(section), ln)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", in.ID, err)
	}
	return nil
}

// apply folds one assignment line into the section's current state
func apply(sec *Section, ln parser.Line) {
	old, exists := sec.Get(ln.Key)

	switch ln.Op {
	case parser.OpSet, parser.OpReplace:
		// Plain assignment always resets to a single scalar.
		sec.set(ln.Key, ScalarValue(ln.Value))
	case parser.OpFallback:
		if !exists {
			sec.set(ln.Key, ScalarValue(ln.Value))
		}
	case parser.OpAppend:
		sec.set(ln.Key, accumulate(old, exists, ln.Value))
	case parser.OpUnion:
		if exists && old.contains(ln.Value) {
			// A union still promotes a scalar; only the duplicate is skipped.
			if !old.IsList() {
				sec.set(ln.Key, ListValue(old.Scalar()))
			}
			return
		}
		sec.set(ln.Key, accumulate(old, exists, ln.Value))
	}
}
