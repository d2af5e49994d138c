// Package id issues and checks payment identifiers.
package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Prefix marks payment identifiers in payments.csv.
const Prefix = "pay_"

// NewPaymentID returns a fresh identifier like "pay_1b4e28ba-2fa1-11d2-883f-0016d3cca427".
func NewPaymentID() string {
	return Prefix + uuid.NewString()
}

// ParsePaymentID checks that s is a payment identifier and returns its UUID.
func ParsePaymentID(s string) (uuid.UUID, error) {
	raw, ok := strings.CutPrefix(s, Prefix)
	if !ok {
		return uuid.Nil, fmt.Errorf("invalid payment ID %q: missing %q prefix", s, Prefix)
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid payment ID %q: %w", s, err)
	}
	return u, nil
}
