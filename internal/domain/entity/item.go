package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Item is one entry of the sales catalog. Code and description are each
// unique within the catalog; the unit price is fixed reference data, never
// edited through an order.
type Item struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Code        string          `gorm:"size:100;unique;not null" json:"code"`
	Description string          `gorm:"size:255;unique;not null" json:"description"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unitPrice"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}
