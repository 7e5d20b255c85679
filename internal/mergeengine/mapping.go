package mergeengine

import (
	"bytes"
	"encoding/json"
)

// DefaultSection is the name of the implicit section that receives
// assignments appearing before any section header.
const DefaultSection = ""

// Mapping is the merged configuration: section name to key to value.
// Section and key insertion order is preserved for serialization. The
// result of a merge is immutable by convention: only read accessors are
// exported.
type Mapping struct {
	sections map[string]*Section
	order    []string
}

// NewMapping creates an empty Mapping
func NewMapping() *Mapping {
	return &Mapping{sections: make(map[string]*Section)}
}

// Section returns the named section, if present
func (m *Mapping) Section(name string) (*Section, bool) {
	sec, ok := m.sections[name]
	return sec, ok
}

// SectionNames returns the section names in insertion order
func (m *Mapping) SectionNames() []string {
	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}

// Len returns the number of sections
func (m *Mapping) Len() int {
	return len(m.order)
}

// Equal reports value-level equality of two mappings, including list
// order within values. Section insertion order does not affect equality.
func (m *Mapping) Equal(other *Mapping) bool {
	if len(m.sections) != len(other.sections) {
		return false
	}
	for name, sec := range m.sections {
		osec, ok := other.sections[name]
		if !ok || !sec.Equal(osec) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the mapping as a nested JSON object, sections and
// keys in insertion order
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONEntry(&buf, name, m.sections[name]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ensure returns the named section, creating it if absent. Re-creating
// an existing section keeps its keys: headers are cumulative.
func (m *Mapping) ensure(name string) *Section {
	if sec, ok := m.sections[name]; ok {
		return sec
	}
	sec := &Section{name: name, values: make(map[string]Value)}
	m.sections[name] = sec
	m.order = append(m.order, name)
	return sec
}

// Section is one named group of key/value pairs within a Mapping
type Section struct {
	name   string
	values map[string]Value
	order  []string
}

// Name returns the section name; empty for the default section
func (s *Section) Name() string {
	return s.name
}

// Get returns the value for key, if present
func (s *Section) Get(key string) (Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns the section's keys in insertion order
func (s *Section) Keys() []string {
	keys := make([]string, len(s.order))
	copy(keys, s.order)
	return keys
}

// Len returns the number of keys
func (s *Section) Len() int {
	return len(s.order)
}

// Equal reports value-level equality of two sections
func (s *Section) Equal(other *Section) bool {
	if len(s.values) != len(other.values) {
		return false
	}
	for key, v := range s.values {
		ov, ok := other.values[key]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the section as a JSON object, keys in insertion order
func (s *Section) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONEntry(&buf, key, s.values[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// set stores a value, tracking first-insertion order of the key
func (s *Section) set(key string, v Value) {
	if _, ok := s.values[key]; !ok {
		s.order = append(s.order, key)
	}
	s.values[key] = v
}

func writeJSONEntry(buf *bytes.Buffer, key string, v interface{}) error {
	encodedKey, err := json.Marshal(key)
	if err != nil {
		return err
	}
	encodedValue, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(encodedKey)
	buf.WriteByte(':')
	buf.Write(encodedValue)
	return nil
}
