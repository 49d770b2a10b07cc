// Package money handles the integer-cents representation used on every
// price in the system. Amounts travel as cents and are only converted to
// decimal euros at the presentation edge.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Cents is a monetary amount in minor currency units.
type Cents int64

var (
	ErrNotANumber = errors.New("amount is not a number")
	ErrNegative   = errors.New("amount must not be negative")
)

// ParseEuros converts user-entered decimal euros (e.g. "3.50") to cents,
// rounding half-up on the cents boundary. Negative amounts are rejected.
func ParseEuros(s string) (Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrNotANumber
	}
	if d.IsNegative() {
		return 0, ErrNegative
	}
	return Cents(d.Shift(2).Round(0).IntPart()), nil
}

// Euros returns the decimal euro value of c.
func (c Cents) Euros() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// Format renders c as a euro display string, e.g. "€2.20".
func (c Cents) Format() string {
	return fmt.Sprintf("€%s", c.Euros().StringFixed(2))
}
