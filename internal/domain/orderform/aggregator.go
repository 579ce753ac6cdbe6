package orderform

import "github.com/shopspring/decimal"

// Totals holds the order-level sums of the three per-line amounts.
type Totals struct {
	Excl decimal.Decimal `json:"totalExcl"`
	Tax  decimal.Decimal `json:"totalTax"`
	Incl decimal.Decimal `json:"totalIncl"`
}

// Rounded returns the totals rounded to two decimal places.
func (t Totals) Rounded() Totals {
	t.Excl = t.Excl.Round(2)
	t.Tax = t.Tax.Round(2)
	t.Incl = t.Incl.Round(2)
	return t
}

// Aggregate sums the computed amounts of every line, in input order.
// An empty line set yields zero totals.
func Aggregate(lines []Line) Totals {
	var t Totals
	for _, l := range lines {
		t.Excl = t.Excl.Add(l.ExclAmount)
		t.Tax = t.Tax.Add(l.TaxAmount)
		t.Incl = t.Incl.Add(l.InclAmount)
	}
	return t
}
