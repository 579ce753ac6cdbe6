package orderform

import (
	"strings"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// parseAmount interprets a raw field value for computation. Blank or
// malformed input computes as zero; the raw value stays as entered.
func parseAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Recompute derives a line's three amount fields from its quantity, unit
// price and tax rate:
//
//	excl = quantity * unitPrice
//	tax  = excl * taxRate / 100
//	incl = excl + tax
//
// The computation keeps full precision; no intermediate rounding.
func Recompute(l Line) Line {
	qty := parseAmount(l.Quantity)
	rate := parseAmount(l.TaxRate)

	l.ExclAmount = qty.Mul(l.UnitPrice)
	l.TaxAmount = l.ExclAmount.Mul(rate).Div(oneHundred)
	l.InclAmount = l.ExclAmount.Add(l.TaxAmount)
	return l
}
