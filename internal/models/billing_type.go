package models

// BillingType is the second classification dimension (how a purchase was
// billed: credit card, pix, cash, ...). Same shape as Category.
type BillingType struct {
	Base
	Name string `gorm:"not null" json:"name"`

	Invoices []Invoice `gorm:"foreignKey:BillingTypeID" json:"invoices,omitempty"`
}
