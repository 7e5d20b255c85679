package mergeengine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMapping_MarshalJSON_PreservesInsertionOrder tests ordered serialization
func TestMapping_MarshalJSON_PreservesInsertionOrder(t *testing.T) {
	m, err := Merge([]Input{{ID: "test", Text: "[zeta]\nb = 2\na = 1\n[alpha]\nkey += one\nkey += two"}})
	require.NoError(t, err)

	out, err := json.Marshal(m)
	require.NoError(t, err)

	assert.Equal(t, `{"zeta":{"b":"2","a":"1"},"alpha":{"key":["one","two"]}}`, string(out),
		"Sections and keys should serialize in insertion order, not sorted")
}

// TestMapping_Equal_IgnoresInsertionOrder tests that equality is value-level
func TestMapping_Equal_IgnoresInsertionOrder(t *testing.T) {
	first, err := Merge([]Input{{ID: "a", Text: "[x]\nk = v\n[y]\nk = v"}})
	require.NoError(t, err)
	second, err := Merge([]Input{{ID: "b", Text: "[y]\nk = v\n[x]\nk = v"}})
	require.NoError(t, err)

	assert.True(t, first.Equal(second), "Section insertion order should not affect equality")
}

// TestSection_Accessors_ExposeNameAndKeys tests read access to a merged section
func TestSection_Accessors_ExposeNameAndKeys(t *testing.T) {
	m, err := Merge([]Input{{ID: "test", Text: "[server]\nport = 8080\nhost = local"}})
	require.NoError(t, err)

	sec, ok := m.Section("server")
	require.True(t, ok)

	assert.Equal(t, "server", sec.Name())
	assert.Equal(t, 2, sec.Len())
	assert.Equal(t, []string{"port", "host"}, sec.Keys())

	_, ok = sec.Get("absent")
	assert.False(t, ok, "Get should report missing keys")
}
