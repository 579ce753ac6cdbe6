package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalesOrder is a persisted sales order: customer header with a copied
// address snapshot plus its line items. The address columns hold the
// snapshot taken at customer selection time, not a live reference.
//
// The three totals are a cache for list rendering. They are recomputed
// from the qualifying lines on every save and again on load; stored values
// are never trusted beyond the initial list display.
type SalesOrder struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID   *uuid.UUID      `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	CustomerName string          `gorm:"size:255" json:"customer_name"`
	Address1     string          `gorm:"size:255" json:"address1"`
	Address2     string          `gorm:"size:255" json:"address2"`
	Address3     string          `gorm:"size:255" json:"address3"`
	Suburb       string          `gorm:"size:100" json:"suburb"`
	State        string          `gorm:"size:50" json:"state"`
	PostCode     string          `gorm:"size:20" json:"post_code"`
	InvoiceNo    string          `gorm:"size:100;not null;index" json:"invoice_no"`
	InvoiceDate  time.Time       `gorm:"type:date;not null" json:"invoice_date"`
	ReferenceNo  string          `gorm:"size:100" json:"reference_no"`
	Notes        string          `gorm:"type:text" json:"notes"`
	TotalExcl    decimal.Decimal `gorm:"type:numeric(14,2)" json:"total_excl"`
	TotalTax     decimal.Decimal `gorm:"type:numeric(14,2)" json:"total_tax"`
	TotalIncl    decimal.Decimal `gorm:"type:numeric(14,2)" json:"total_incl"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer        `gorm:"foreignKey:CustomerID" json:"-"`
	Lines    []SalesOrderLine `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sales order
func (o *SalesOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalesOrder model
func (SalesOrder) TableName() string {
	return "sales_orders"
}

// SalesOrderLine is one persisted line item. Only qualifying lines reach
// this table; blank editing rows are dropped at submission. Item code,
// description and unit price are denormalised onto the line so an order
// survives later catalog changes unchanged.
type SalesOrderLine struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	LineNo      int             `gorm:"not null" json:"line_no"`
	ItemCode    string          `gorm:"size:100;not null" json:"item_code"`
	Description string          `gorm:"size:255" json:"description"`
	Note        string          `gorm:"type:text" json:"note"`
	Quantity    decimal.Decimal `gorm:"type:numeric(12,3);not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	TaxRate     decimal.Decimal `gorm:"type:numeric(6,3)" json:"tax_rate"`
	ExclAmount  decimal.Decimal `gorm:"type:numeric(14,2)" json:"excl_amount"`
	TaxAmount   decimal.Decimal `gorm:"type:numeric(14,2)" json:"tax_amount"`
	InclAmount  decimal.Decimal `gorm:"type:numeric(14,2)" json:"incl_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relationships
	Order SalesOrder `gorm:"foreignKey:OrderID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order line
func (l *SalesOrderLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalesOrderLine model
func (SalesOrderLine) TableName() string {
	return "sales_order_lines"
}
