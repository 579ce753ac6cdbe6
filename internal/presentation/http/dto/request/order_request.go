package request

import "github.com/salesdesk/salesdesk-api/internal/domain/orderform"

// OrderLineRequest is one submitted form row. Quantity and tax rate arrive
// as raw strings, exactly as typed into the form; blank computes as zero.
// Unit price and the three amounts are not accepted from the client, they
// are recomputed server-side.
type OrderLineRequest struct {
	ItemCode    string `json:"itemCode"`
	Description string `json:"description"`
	Note        string `json:"note"`
	Quantity    string `json:"quantity"`
	TaxRate     string `json:"taxRate"`
}

// OrderRequest is the payload for creating or updating a sales order.
type OrderRequest struct {
	CustomerID   string             `json:"customerId"`
	CustomerName string             `json:"customerName" binding:"max=255"`
	Address1     string             `json:"address1" binding:"max=255"`
	Address2     string             `json:"address2" binding:"max=255"`
	Address3     string             `json:"address3" binding:"max=255"`
	Suburb       string             `json:"suburb" binding:"max=100"`
	State        string             `json:"state" binding:"max=50"`
	PostCode     string             `json:"postCode" binding:"max=20"`
	InvoiceNo    string             `json:"invoiceNo" binding:"required,max=100"`
	InvoiceDate  string             `json:"invoiceDate" binding:"required"`
	ReferenceNo  string             `json:"referenceNo" binding:"max=100"`
	Notes        string             `json:"notes"`
	Lines        []OrderLineRequest `json:"lines"`
}

// ToForm maps the payload into the order form engine's state type.
func (r *OrderRequest) ToForm() orderform.Form {
	lines := make([]orderform.Line, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = orderform.Line{
			ItemCode:    l.ItemCode,
			Description: l.Description,
			Note:        l.Note,
			Quantity:    l.Quantity,
			TaxRate:     l.TaxRate,
		}
	}
	return orderform.Form{
		Header: orderform.Header{
			CustomerID:   r.CustomerID,
			CustomerName: r.CustomerName,
			Address1:     r.Address1,
			Address2:     r.Address2,
			Address3:     r.Address3,
			Suburb:       r.Suburb,
			State:        r.State,
			PostCode:     r.PostCode,
			InvoiceNo:    r.InvoiceNo,
			InvoiceDate:  r.InvoiceDate,
			ReferenceNo:  r.ReferenceNo,
			Notes:        r.Notes,
		},
		Lines: lines,
	}
}

// RecalculateRequest carries a draft form for server-side recalculation.
// Nothing is required; a half-filled form is still computable.
type RecalculateRequest struct {
	Header orderform.Header   `json:"header"`
	Lines  []OrderLineRequest `json:"lines"`
}

// ToForm maps the draft into the order form engine's state type.
func (r *RecalculateRequest) ToForm() orderform.Form {
	lines := make([]orderform.Line, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = orderform.Line{
			ItemCode:    l.ItemCode,
			Description: l.Description,
			Note:        l.Note,
			Quantity:    l.Quantity,
			TaxRate:     l.TaxRate,
		}
	}
	return orderform.Form{Header: r.Header, Lines: lines}
}
