package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstString(t *testing.T) {
	raw := map[string]any{
		"full_name": "Jane Doe",
		"name":      "ignored",
		"gpa":       3.8,
		"blank":     "   ",
	}

	tests := []struct {
		name     string
		keys     []string
		expected string
	}{
		{"first candidate wins", []string{"full_name", "name"}, "Jane Doe"},
		{"falls through missing keys", []string{"fullName", "full_name"}, "Jane Doe"},
		{"numeric value stringified", []string{"gpa"}, "3.8"},
		{"whitespace-only is empty", []string{"blank"}, ""},
		{"no match", []string{"nope"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, firstString(raw, tt.keys))
		})
	}
}

func TestFirstList(t *testing.T) {
	raw := map[string]any{
		"experiences": []any{},
		"positions":   []any{map[string]any{"title": "Engineer"}},
		"education":   "not a list",
	}

	// Empty arrays are skipped in favor of a later non-empty candidate.
	list := firstList(raw, []string{"experience", "experiences", "positions"})
	assert.Len(t, list, 1)

	assert.Nil(t, firstList(raw, []string{"education"}))
	assert.Nil(t, firstList(raw, []string{"missing"}))
}

func TestAsString(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"string", "  hello ", "hello"},
		{"float", float64(42), "42"},
		{"fractional float", 3.75, "3.75"},
		{"bool", true, "true"},
		{"nil", nil, ""},
		{"object", map[string]any{}, ""},
		{"array", []any{"x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, asString(tt.input))
		})
	}
}

func TestAsBool(t *testing.T) {
	assert.True(t, asBool(true))
	assert.True(t, asBool("true"))
	assert.True(t, asBool(float64(1)))
	assert.False(t, asBool(false))
	assert.False(t, asBool("no"))
	assert.False(t, asBool(nil))
	assert.False(t, asBool(float64(0)))
}
