package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"$1,234.56", "1234.56", true},
		{"(500)", "500", true},
		{"abc", "", false},
		{"", "", false},
		{"   ", "", false},
		{"-$42.10", "-42.1", true},
		{"$ -7", "-7", true},
		{"0", "0", true},
		{"$0.00", "0", true},
		{".5", "0.5", true},
		{"5.", "5", true},
		{"-.25", "-0.25", true},
		{"1.2.3", "", false},
		{"1-2", "", false},
		{"--5", "", false},
		{"-", "", false},
		{".", "", false},
		{"USD 1 000", "1000", true},
		{"1e5", "15", true},
	}
	for _, tt := range tests {
		got, ok := ParseAmount(tt.in)
		require.Equal(t, tt.ok, ok, "ParseAmount(%q) ok", tt.in)
		if tt.ok {
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseAmountPtr(t *testing.T) {
	assert.Nil(t, ParseAmountPtr("n/a"))

	got := ParseAmountPtr("$10")
	require.NotNil(t, got)
	assert.Equal(t, "10", got.String())
}

func TestFormatDollars(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1234.56", "$1,234.56"},
		{"0", "$0.00"},
		{"-1234567.891", "-$1,234,567.89"},
		{"999.995", "$1,000.00"},
		{"-0.001", "$0.00"},
		{"12", "$12.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDollars(decimal.RequireFromString(tt.in)), "FormatDollars(%s)", tt.in)
	}
}

func TestFormatOptional(t *testing.T) {
	assert.Equal(t, "", FormatOptional(nil))
	d := decimal.NewFromInt(5)
	assert.Equal(t, "$5.00", FormatOptional(&d))
}
