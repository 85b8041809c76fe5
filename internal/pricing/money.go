// Package pricing computes fares and aggregates booking charges.
//
// All arithmetic happens in integer paise (minor currency units); rupee
// values appear only at API and persistence boundaries.
package pricing

import (
	"fmt"
	"math"
)

// Money is an amount in paise. 100 paise = 1 rupee.
type Money int64

// FromRupees converts a rupee amount to Money, rounding half-up to the paisa.
// Decimal rupee values sit just below their true value in binary float
// (1.005*100 is 100.4999...), so the half-up floor needs a nudge above the
// representation error before truncating.
func FromRupees(r float64) Money {
	return Money(math.Floor(r*100 + 0.5 + 1e-9))
}

// Rupees returns the amount in rupees.
func (m Money) Rupees() float64 {
	return float64(m) / 100
}

// String formats the amount as a decimal rupee value.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Rupees())
}

// MulRatio multiplies the amount by num/den, rounding half-up.
// Used for class multipliers such as the 1.5x express rate.
func (m Money) MulRatio(num, den int64) Money {
	v := int64(m) * num
	if v >= 0 {
		return Money((v + den/2) / den)
	}
	return Money(-((-v + den/2) / den))
}
