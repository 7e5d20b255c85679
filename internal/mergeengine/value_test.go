package mergeengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValue_Accessors_DistinguishScalarAndList tests the tagged variant shape
func TestValue_Accessors_DistinguishScalarAndList(t *testing.T) {
	scalar := ScalarValue("a")
	list := ListValue("a", "b")

	assert.False(t, scalar.IsList())
	assert.Equal(t, "a", scalar.Scalar())
	assert.Nil(t, scalar.List(), "A scalar should have no list")
	assert.Equal(t, []string{"a"}, scalar.Strings(), "Strings should wrap a scalar in one element")

	assert.True(t, list.IsList())
	assert.Equal(t, []string{"a", "b"}, list.List())
	assert.Equal(t, []string{"a", "b"}, list.Strings())
}

// TestValue_Equal_ComparesShapeAndOrder tests value-level equality
func TestValue_Equal_ComparesShapeAndOrder(t *testing.T) {
	tests := []struct {
		name        string
		a           Value
		b           Value
		expected    bool
		description string
	}{
		{
			name:        "EqualScalars",
			a:           ScalarValue("x"),
			b:           ScalarValue("x"),
			expected:    true,
			description: "Identical scalars should be equal",
		},
		{
			name:        "DifferentScalars",
			a:           ScalarValue("x"),
			b:           ScalarValue("y"),
			expected:    false,
			description: "Different scalars should not be equal",
		},
		{
			name:        "ScalarVersusOneElementList",
			a:           ScalarValue("x"),
			b:           ListValue("x"),
			expected:    false,
			description: "A scalar is never equal to a list, even with the same content",
		},
		{
			name:        "EqualLists",
			a:           ListValue("x", "y"),
			b:           ListValue("x", "y"),
			expected:    true,
			description: "Identical lists should be equal",
		},
		{
			name:        "ReorderedLists",
			a:           ListValue("x", "y"),
			b:           ListValue("y", "x"),
			expected:    false,
			description: "List order is significant",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Equal(tt.b), tt.description)
			assert.Equal(t, tt.expected, tt.b.Equal(tt.a), "Equality should be symmetric")
		})
	}
}

// TestAccumulate_IsAPureTransform tests that accumulate never aliases its input
func TestAccumulate_IsAPureTransform(t *testing.T) {
	old := ListValue("a", "b")

	grown := accumulate(old, true, "c")

	assert.Equal(t, ListValue("a", "b", "c"), grown)
	assert.Equal(t, ListValue("a", "b"), old, "The prior value must be left untouched")
}

// TestValue_ListAccessor_ReturnsACopy tests that callers cannot mutate a value
func TestValue_ListAccessor_ReturnsACopy(t *testing.T) {
	v := ListValue("a", "b")

	elems := v.List()
	elems[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, v.List(), "List should return an independent copy")
}

// TestValue_MarshalJSON_EncodesShape tests JSON encoding of both variants
func TestValue_MarshalJSON_EncodesShape(t *testing.T) {
	scalarJSON, err := ScalarValue("a b").MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"a b"`, string(scalarJSON))

	listJSON, err := ListValue("a", "b").MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(listJSON))
}
