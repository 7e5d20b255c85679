// Package render serializes a merged configuration mapping for terminal
// and machine consumption.
package render

import (
	"encoding/json"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mergeconf.dev/cli/internal/mergeengine"
)

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	opStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Text renders the mapping in ini form, sections and keys in insertion
// order. Scalars render as one "key = value" line; lists render as one
// "key += value" line per element, which parses back to the same mapping.
// Keys of the default section come first, with no header.
func Text(m *mergeengine.Mapping, color bool) string {
	var b strings.Builder
	for i, name := range m.SectionNames() {
		sec, _ := m.Section(name)
		if i > 0 {
			b.WriteByte('\n')
		}
		if name != mergeengine.DefaultSection {
			header := "[" + name + "]"
			if color {
				header = sectionStyle.Render(header)
			}
			b.WriteString(header)
			b.WriteByte('\n')
		}
		for _, key := range sec.Keys() {
			v, _ := sec.Get(key)
			if v.IsList() {
				for _, elem := range v.List() {
					writeAssignment(&b, key, "+=", elem, color)
				}
			} else {
				writeAssignment(&b, key, "=", v.Scalar(), color)
			}
		}
	}
	return b.String()
}

// JSON renders the mapping as an indented nested JSON object
func JSON(m *mergeengine.Mapping) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

func writeAssignment(b *strings.Builder, key, op, value string, color bool) {
	if color {
		key = keyStyle.Render(key)
		op = opStyle.Render(op)
	}
	b.WriteString(key)
	b.WriteByte(' ')
	b.WriteString(op)
	b.WriteByte(' ')
	b.WriteString(quoteIfNeeded(value))
	b.WriteByte('\n')
}

// quoteIfNeeded wraps values the tokenizer would not read back verbatim:
// empty strings and values with leading or trailing whitespace.
func quoteIfNeeded(value string) string {
	if value == "" || strings.TrimSpace(value) != value {
		return "'" + value + "'"
	}
	return value
}
