package models

// Category is a labeled classification dimension attached to every invoice.
type Category struct {
	Base
	Name string `gorm:"not null" json:"name"`

	Invoices []Invoice `gorm:"foreignKey:CategoryID" json:"invoices,omitempty"`
}
