// Package money holds the monetary types used by the pricing core.
// All arithmetic goes through shopspring/decimal so that repeated
// price*quantity products never pick up binary floating point drift.
package money

import (
	"github.com/shopspring/decimal"
)

const places = 2

// Amount is a total in pounds. Values produced by this package are already
// rounded half-up to two decimal places.
type Amount float64

// UnitPrice is the price of exactly one unit (a bag, a child, an hour, a
// balloon). It is never a total: turning it into an Amount requires a
// quantity.
type UnitPrice float64

// Zero is the empty amount.
const Zero Amount = 0

// Round rounds v half-up to two decimal places.
func Round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// FromFloat converts a raw stored price into a rounded Amount.
func FromFloat(v float64) Amount {
	return Amount(Round(v))
}

// Times multiplies the unit price by an integer quantity.
func (u UnitPrice) Times(quantity int) Amount {
	if quantity <= 0 {
		return Zero
	}

	product := decimal.NewFromFloat(float64(u)).Mul(decimal.NewFromInt(int64(quantity)))
	return fromDecimal(product)
}

// TimesHours multiplies an hourly rate by a (possibly fractional) number of hours.
func (u UnitPrice) TimesHours(hours float64) Amount {
	if hours <= 0 {
		return Zero
	}

	product := decimal.NewFromFloat(float64(u)).Mul(decimal.NewFromFloat(hours))
	return fromDecimal(product)
}

// Amount returns the price of a single unit as a rounded total.
func (u UnitPrice) Amount() Amount {
	return FromFloat(float64(u))
}

// Sum adds amounts and rounds the result.
func Sum(amounts ...Amount) Amount {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(float64(a)))
	}
	return fromDecimal(total)
}

// Float64 returns the amount as a plain float.
func (a Amount) Float64() float64 {
	return float64(a)
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return decimal.NewFromFloat(float64(a)).IsZero()
}

// String formats the amount with exactly two decimals.
func (a Amount) String() string {
	return decimal.NewFromFloat(float64(a)).StringFixed(places)
}

func fromDecimal(d decimal.Decimal) Amount {
	return Amount(d.Round(places).InexactFloat64())
}
