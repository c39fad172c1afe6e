package models

import "fatura/internal/dates"

// Invoice represents a recorded purchase. It may span several months via
// installments or repeat indefinitely when recurring.
//
// EndDate is derived, never caller-supplied: NULL for recurring invoices,
// purchaseDate + (installments-1) months for installment invoices, and
// purchaseDate itself for one-offs. Every write path recomputes it.
type Invoice struct {
	Base
	Name          string      `gorm:"not null" json:"name"`
	PurchaseDate  dates.Date  `gorm:"type:date;not null" json:"purchaseDate"`
	EndDate       *dates.Date `gorm:"type:date" json:"endDate,omitempty"`
	Installments  int         `gorm:"not null;default:0" json:"installments"`
	Recurring     bool        `gorm:"not null;default:false" json:"recurring"`
	Price         float64     `gorm:"not null" json:"price"`
	CategoryID    string      `gorm:"type:uuid;not null" json:"categoryId"`
	BillingTypeID string      `gorm:"type:uuid;not null" json:"billingTypeId"`

	// Relationships
	Category    *Category    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	BillingType *BillingType `gorm:"foreignKey:BillingTypeID" json:"billingType,omitempty"`
}
