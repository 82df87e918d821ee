package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "Zero", input: 0, expected: "$0.00"},
		{name: "Valor com milhar", input: 1234.5, expected: "$1,234.50"},
		{name: "Arredonda na apresentação", input: 10.005, expected: "$10.01"},
		{name: "Milhões", input: 1234567.891, expected: "$1,234,567.89"},
		{name: "Negativo", input: -12.3, expected: "-$12.30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.input))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 12.35, RoundWithTwoDecimalPlace(12.345))
	assert.Equal(t, 0.3, RoundWithTwoDecimalPlace(0.1+0.2))
}

func TestDateFormatting(t *testing.T) {
	date := time.Date(2024, 3, 5, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, "Mar 5", FormatShortDate(date))
	assert.Equal(t, "Mar 5, 2024", FormatDisplayDate(date))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), *date)

	empty, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)
}

func TestGenerateVersion(t *testing.T) {
	first, err := GenerateVersion()
	require.NoError(t, err)
	second, err := GenerateVersion()
	require.NoError(t, err)

	assert.Len(t, first, 12)
	assert.NotEqual(t, first, second)
}
