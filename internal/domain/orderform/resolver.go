package orderform

import "github.com/shopspring/decimal"

// LineField identifies which line field an input event changed. The
// resolver dispatches on it, so item code and description edits share one
// code path instead of two near-duplicate handlers.
type LineField string

const (
	FieldItemCode    LineField = "itemCode"
	FieldDescription LineField = "description"
	FieldNote        LineField = "note"
	FieldQuantity    LineField = "quantity"
	FieldTaxRate     LineField = "taxRate"
)

// ResolveByItemCode finds the catalog entry with the exact code.
// Matching is case-sensitive; the first match wins if duplicates exist.
func ResolveByItemCode(items []CatalogItem, code string) (CatalogItem, bool) {
	for _, item := range items {
		if item.Code == code {
			return item, true
		}
	}
	return CatalogItem{}, false
}

// ResolveByDescription finds the catalog entry with the exact description.
func ResolveByDescription(items []CatalogItem, description string) (CatalogItem, bool) {
	for _, item := range items {
		if item.Description == description {
			return item, true
		}
	}
	return CatalogItem{}, false
}

// ResolveCustomer finds the customer with the given id.
func ResolveCustomer(customers []Customer, id string) (Customer, bool) {
	for _, c := range customers {
		if c.ID == id {
			return c, true
		}
	}
	return Customer{}, false
}

// resolveLine fills the counterpart fields for the line field that changed.
// An empty key explicitly clears the dependent fields; a non-empty key with
// no catalog match leaves them at their prior values.
func resolveLine(items []CatalogItem, l Line, changed LineField) Line {
	switch changed {
	case FieldItemCode:
		if l.ItemCode == "" {
			l.Description = ""
			l.UnitPrice = decimal.Zero
			return l
		}
		if item, ok := ResolveByItemCode(items, l.ItemCode); ok {
			l.Description = item.Description
			l.UnitPrice = item.UnitPrice
		}
	case FieldDescription:
		if l.Description == "" {
			l.ItemCode = ""
			l.UnitPrice = decimal.Zero
			return l
		}
		if item, ok := ResolveByDescription(items, l.Description); ok {
			l.ItemCode = item.Code
			l.UnitPrice = item.UnitPrice
		}
	}
	return l
}
