package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestParseFeatures(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected datatypes.JSON
	}{
		{
			name:     "empty string stores null",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only stores null",
			input:    "   \n\t",
			expected: nil,
		},
		{
			name:     "valid array passes through",
			input:    `["AC cabin","Joystick controls"]`,
			expected: datatypes.JSON(`["AC cabin","Joystick controls"]`),
		},
		{
			name:     "valid object passes through",
			input:    `{"engine":"Kubota"}`,
			expected: datatypes.JSON(`{"engine":"Kubota"}`),
		},
		{
			name:     "coerced object marker stores null",
			input:    "[object Object]",
			expected: nil,
		},
		{
			name:     "marker embedded in otherwise valid JSON stores null",
			input:    `["[object Object]"]`,
			expected: nil,
		},
		{
			name:     "invalid JSON stores null",
			input:    "not json at all",
			expected: nil,
		},
		{
			name:     "truncated JSON stores null",
			input:    `["AC cabin",`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseFeatures(tt.input))
		})
	}
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "heavy-equipment", normalizeCategory("Heavy Equipment"))
	assert.Equal(t, "compact-track-loaders", normalizeCategory("  Compact  Track Loaders "))
	assert.Equal(t, "excavators", normalizeCategory("excavators"))
}

func TestParseNullableFloat(t *testing.T) {
	assert.Nil(t, parseNullableFloat(""))
	assert.Nil(t, parseNullableFloat("  "))
	assert.Nil(t, parseNullableFloat("abc"))

	v := parseNullableFloat("74.3")
	if assert.NotNil(t, v) {
		assert.Equal(t, 74.3, *v)
	}

	zero := parseNullableFloat("0")
	if assert.NotNil(t, zero) {
		assert.Equal(t, 0.0, *zero)
	}
}

func TestParseCheckbox(t *testing.T) {
	assert.True(t, parseCheckbox("true"))
	assert.False(t, parseCheckbox("TRUE"))
	assert.False(t, parseCheckbox("on"))
	assert.False(t, parseCheckbox(""))
}
