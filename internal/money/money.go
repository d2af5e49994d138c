// Package money parses free-text currency cells and formats amounts for display.
package money

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	nonNumeric = regexp.MustCompile(`[^\d.\-]`)
	plainNum   = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)$`)
)

// ParseAmount strips every character that is not a digit, '.' or '-' and parses
// what is left as a plain decimal. Parentheses do not imply a negative sign:
// "(500)" parses as 500. It reports false when the remainder is not a number.
func ParseAmount(s string) (decimal.Decimal, bool) {
	cleaned := nonNumeric.ReplaceAllString(s, "")
	if !plainNum.MatchString(cleaned) {
		return decimal.Zero, false
	}

	neg := strings.HasPrefix(cleaned, "-")
	digits := strings.TrimPrefix(cleaned, "-")
	digits = strings.TrimSuffix(digits, ".")
	if strings.HasPrefix(digits, ".") {
		digits = "0" + digits
	}
	if neg {
		digits = "-" + digits
	}

	d, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseAmountPtr is ParseAmount returning nil for unparseable input.
func ParseAmountPtr(s string) *decimal.Decimal {
	d, ok := ParseAmount(s)
	if !ok {
		return nil
	}
	return &d
}

var printer = message.NewPrinter(language.English)

// FormatDollars renders d as "$1,234.56", with a leading minus for negatives.
func FormatDollars(d decimal.Decimal) string {
	rounded := d.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	fixed := rounded.StringFixed(2)
	frac := fixed[strings.IndexByte(fixed, '.'):]
	return sign + "$" + printer.Sprintf("%d", rounded.IntPart()) + frac
}

// FormatOptional renders a possibly missing amount, using blank for nil.
func FormatOptional(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return FormatDollars(*d)
}
