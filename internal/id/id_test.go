package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentID(t *testing.T) {
	a := NewPaymentID()
	b := NewPaymentID()
	assert.NotEqual(t, a, b)
	assert.True(t, len(a) > len(Prefix))

	u, err := ParsePaymentID(a)
	require.NoError(t, err)
	assert.Equal(t, a, Prefix+u.String())
}

func TestParsePaymentID(t *testing.T) {
	tests := []struct {
		in      string
		wantErr string
	}{
		{"pay_1b4e28ba-2fa1-11d2-883f-0016d3cca427", ""},
		{"1b4e28ba-2fa1-11d2-883f-0016d3cca427", "missing"},
		{"pay_nope", "invalid payment ID"},
		{"", "missing"},
	}
	for _, tt := range tests {
		_, err := ParsePaymentID(tt.in)
		if tt.wantErr == "" {
			assert.NoError(t, err, "ParsePaymentID(%q)", tt.in)
		} else {
			assert.ErrorContains(t, err, tt.wantErr, "ParsePaymentID(%q)", tt.in)
		}
	}
}
