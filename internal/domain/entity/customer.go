package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is an immutable reference record. Orders copy its address into
// their own header at selection time; they never link back to it for
// address data.
type Customer struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Address1  string         `gorm:"size:255" json:"address1"`
	Address2  string         `gorm:"size:255" json:"address2"`
	Address3  string         `gorm:"size:255" json:"address3"`
	Suburb    string         `gorm:"size:100" json:"suburb"`
	State     string         `gorm:"size:50" json:"state"`
	PostCode  string         `gorm:"size:20" json:"postCode"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Orders []SalesOrder `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
