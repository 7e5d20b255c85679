package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergeconf.dev/cli/internal/mergeengine"
)

func mergeText(t *testing.T, text string) *mergeengine.Mapping {
	t.Helper()

	m, err := mergeengine.Merge([]mergeengine.Input{{ID: "test", Text: text}})
	require.NoError(t, err)
	return m
}

// TestText_RendersIniForm tests the plain text rendering
func TestText_RendersIniForm(t *testing.T) {
	m := mergeText(t, "top = level\n[server]\nport = 8080\nlisten += 127.0.0.1\nlisten += ::1")

	out := Text(m, false)

	expected := "top = level\n\n[server]\nport = 8080\nlisten += 127.0.0.1\nlisten += ::1\n"
	assert.Equal(t, expected, out,
		"Default section keys should come first without a header; lists render one += line per element")
}

// TestText_OutputParsesBackToTheSameMapping tests round-trip fidelity
func TestText_OutputParsesBackToTheSameMapping(t *testing.T) {
	m := mergeText(t, `
alone += only
[paths]
root = /srv
extra += '  padded  '
extra += plain
empty = ''
`)

	reparsed := mergeText(t, Text(m, false))

	assert.True(t, m.Equal(reparsed), "Rendered text should merge back to an equal mapping")
}

// TestText_QuotesValuesTheTokenizerWouldMangle tests defensive quoting
func TestText_QuotesValuesTheTokenizerWouldMangle(t *testing.T) {
	m := mergeText(t, "empty = ''\npadded = '  x  '")

	out := Text(m, false)

	assert.Contains(t, out, "empty = ''\n", "Empty values should render quoted")
	assert.Contains(t, out, "padded = '  x  '\n", "Padded values should render quoted")
}

// TestJSON_EncodesNestedObject tests the JSON rendering
func TestJSON_EncodesNestedObject(t *testing.T) {
	m := mergeText(t, "[section]\nkey1 = value1\nkey2 += a\nkey2 += b")

	out, err := JSON(m)

	require.NoError(t, err)
	assert.JSONEq(t, `{"section":{"key1":"value1","key2":["a","b"]}}`, string(out))
}
