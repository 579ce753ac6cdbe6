// Package orderform implements the sales order editing engine: catalog
// resolution for line items, per-line amount computation, order-level
// aggregation and submission validation. All state transitions run through
// a single reducer so the consistency rules live in one place.
//
// Amounts are computed at full precision with shopspring/decimal; rounding
// to two decimal places happens only at the presentation and persistence
// boundaries via Rounded().
package orderform

import (
	"time"

	"github.com/shopspring/decimal"
)

// blankLineCount is the number of empty rows a new order form starts with.
const blankLineCount = 3

// CatalogItem is an immutable view of one purchasable catalog entry.
// Code and description are each unique within the catalog.
type CatalogItem struct {
	Code        string
	Description string
	UnitPrice   decimal.Decimal
}

// Customer is an immutable view of one customer reference record.
type Customer struct {
	ID       string
	Name     string
	Address1 string
	Address2 string
	Address3 string
	Suburb   string
	State    string
	PostCode string
}

// Line is one editable row of a sales order. Quantity and TaxRate keep the
// raw value as entered so an empty field displays empty but computes as
// zero. UnitPrice is never user-editable: it is always derived from the
// resolved catalog item, or zero while the line is unresolved.
type Line struct {
	ItemCode    string          `json:"itemCode"`
	Description string          `json:"description"`
	Note        string          `json:"note"`
	Quantity    string          `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     string          `json:"taxRate"`
	ExclAmount  decimal.Decimal `json:"exclAmount"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	InclAmount  decimal.Decimal `json:"inclAmount"`
}

// Rounded returns the line with its monetary fields rounded to two decimal
// places for display or persistence.
func (l Line) Rounded() Line {
	l.UnitPrice = l.UnitPrice.Round(2)
	l.ExclAmount = l.ExclAmount.Round(2)
	l.TaxAmount = l.TaxAmount.Round(2)
	l.InclAmount = l.InclAmount.Round(2)
	return l
}

// Header holds the order's customer identity plus an address snapshot.
// The address fields are copied from the Customer record at selection time
// and are independently editable afterwards; they only resync on an
// explicit re-selection.
type Header struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	Address1     string `json:"address1"`
	Address2     string `json:"address2"`
	Address3     string `json:"address3"`
	Suburb       string `json:"suburb"`
	State        string `json:"state"`
	PostCode     string `json:"postCode"`
	InvoiceNo    string `json:"invoiceNo"`
	InvoiceDate  string `json:"invoiceDate"`
	ReferenceNo  string `json:"referenceNo"`
	Notes        string `json:"notes"`
}

// Form is the full state of one order editing session: header plus an
// ordered sequence of lines. Line order matters for display only, not for
// totals.
type Form struct {
	Header Header `json:"header"`
	Lines  []Line `json:"lines"`
}

// NewForm returns the initial state for creating an order: a blank header
// with today's invoice date and three blank lines.
func NewForm() Form {
	lines := make([]Line, blankLineCount)
	return Form{
		Header: Header{InvoiceDate: time.Now().Format("2006-01-02")},
		Lines:  lines,
	}
}

// LoadForm builds the editing state for an existing order. Loaded lines are
// kept as-is with their amounts recomputed; blank rows are only padded in
// when the order has no lines at all.
func LoadForm(header Header, lines []Line) Form {
	if len(lines) == 0 {
		return Form{Header: header, Lines: make([]Line, blankLineCount)}
	}
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = Recompute(l)
	}
	return Form{Header: header, Lines: out}
}

// Totals returns the order-level totals for the form's current lines.
func (f Form) Totals() Totals {
	return Aggregate(f.Lines)
}

func cloneLines(lines []Line) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}
