package orderform

// HeaderField identifies a directly editable header field. Customer
// selection is not a header field edit; it goes through SelectCustomer so
// the snapshot-copy rules apply.
type HeaderField string

const (
	HeaderCustomerName HeaderField = "customerName"
	HeaderAddress1     HeaderField = "address1"
	HeaderAddress2     HeaderField = "address2"
	HeaderAddress3     HeaderField = "address3"
	HeaderSuburb       HeaderField = "suburb"
	HeaderState        HeaderField = "state"
	HeaderPostCode     HeaderField = "postCode"
	HeaderInvoiceNo    HeaderField = "invoiceNo"
	HeaderInvoiceDate  HeaderField = "invoiceDate"
	HeaderReferenceNo  HeaderField = "referenceNo"
	HeaderNotes        HeaderField = "notes"
)

// Event is one user input applied to a form.
type Event interface {
	isEvent()
}

// SelectCustomer picks a customer for the order header. A valid id copies
// the customer's name and address into the header, overwriting any manual
// edits (last selection wins). The empty sentinel clears the snapshot.
type SelectCustomer struct {
	ID string
}

// SetHeaderField edits one header field directly.
type SetHeaderField struct {
	Field HeaderField
	Value string
}

// SetLineField edits one field of the line at Index, then runs catalog
// resolution and recomputation for that line.
type SetLineField struct {
	Index int
	Field LineField
	Value string
}

// AddLine appends a blank row to the form.
type AddLine struct{}

func (SelectCustomer) isEvent() {}
func (SetHeaderField) isEvent() {}
func (SetLineField) isEvent()   {}
func (AddLine) isEvent()        {}

// Editor applies input events to a form against fixed reference catalogs.
// It holds no mutable state; Apply is a pure (state, event) -> state
// transition and never fails.
type Editor struct {
	Items     []CatalogItem
	Customers []Customer
}

// Apply returns the form state after the given event. Unknown events and
// out-of-range line indexes leave the form unchanged.
func (e Editor) Apply(f Form, ev Event) Form {
	switch ev := ev.(type) {
	case SelectCustomer:
		return e.selectCustomer(f, ev.ID)
	case SetHeaderField:
		f.Header = setHeaderField(f.Header, ev.Field, ev.Value)
		return f
	case SetLineField:
		return e.setLineField(f, ev)
	case AddLine:
		f.Lines = append(cloneLines(f.Lines), Line{})
		return f
	}
	return f
}

// Refresh re-resolves every line against the current catalog and recomputes
// all amounts. Used when a form arrives from outside the editing session,
// e.g. the recalculate endpoint or submission.
func (e Editor) Refresh(f Form) Form {
	lines := cloneLines(f.Lines)
	for i, l := range lines {
		// Resolve by item code when present, otherwise fall back to the
		// description so a line keyed only by description still resolves.
		key := FieldItemCode
		if l.ItemCode == "" && l.Description != "" {
			key = FieldDescription
		}
		lines[i] = Recompute(resolveLine(e.Items, l, key))
	}
	f.Lines = lines
	return f
}

func (e Editor) selectCustomer(f Form, id string) Form {
	h := f.Header
	if c, ok := ResolveCustomer(e.Customers, id); ok {
		h.CustomerID = c.ID
		h.CustomerName = c.Name
		h.Address1 = c.Address1
		h.Address2 = c.Address2
		h.Address3 = c.Address3
		h.Suburb = c.Suburb
		h.State = c.State
		h.PostCode = c.PostCode
	} else {
		// The empty sentinel and an unknown id both clear the snapshot.
		h.CustomerID = ""
		h.CustomerName = ""
		h.Address1 = ""
		h.Address2 = ""
		h.Address3 = ""
		h.Suburb = ""
		h.State = ""
		h.PostCode = ""
	}
	f.Header = h
	return f
}

func (e Editor) setLineField(f Form, ev SetLineField) Form {
	if ev.Index < 0 || ev.Index >= len(f.Lines) {
		return f
	}
	lines := cloneLines(f.Lines)
	l := lines[ev.Index]

	switch ev.Field {
	case FieldItemCode:
		l.ItemCode = ev.Value
	case FieldDescription:
		l.Description = ev.Value
	case FieldNote:
		l.Note = ev.Value
	case FieldQuantity:
		l.Quantity = ev.Value
	case FieldTaxRate:
		l.TaxRate = ev.Value
	default:
		return f
	}

	l = resolveLine(e.Items, l, ev.Field)
	lines[ev.Index] = Recompute(l)
	f.Lines = lines
	return f
}

func setHeaderField(h Header, field HeaderField, value string) Header {
	switch field {
	case HeaderCustomerName:
		h.CustomerName = value
	case HeaderAddress1:
		h.Address1 = value
	case HeaderAddress2:
		h.Address2 = value
	case HeaderAddress3:
		h.Address3 = value
	case HeaderSuburb:
		h.Suburb = value
	case HeaderState:
		h.State = value
	case HeaderPostCode:
		h.PostCode = value
	case HeaderInvoiceNo:
		h.InvoiceNo = value
	case HeaderInvoiceDate:
		h.InvoiceDate = value
	case HeaderReferenceNo:
		h.ReferenceNo = value
	case HeaderNotes:
		h.Notes = value
	}
	return h
}
