package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"fatura/internal/dates"
	"fatura/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	return CreateTestCategoryWithName(t, db, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryWithName creates a category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestBillingType creates a billing type with a unique name.
func CreateTestBillingType(t *testing.T, db *gorm.DB) *models.BillingType {
	t.Helper()
	return CreateTestBillingTypeWithName(t, db, fmt.Sprintf("Test Billing Type %d", nextID()))
}

// CreateTestBillingTypeWithName creates a billing type with the given name.
func CreateTestBillingTypeWithName(t *testing.T, db *gorm.DB, name string) *models.BillingType {
	t.Helper()

	billingType := &models.BillingType{Name: name}
	if err := db.Create(billingType).Error; err != nil {
		t.Fatalf("failed to create test billing type: %v", err)
	}
	return billingType
}

// InvoiceSpec describes a test invoice. PurchaseDate is YYYY-MM-DD;
// EndDate is derived the same way the record builder does it.
type InvoiceSpec struct {
	Name         string
	PurchaseDate string
	Installments int
	Recurring    bool
	Price        float64
}

// CreateTestInvoice stores an invoice with a correctly derived end date.
func CreateTestInvoice(t *testing.T, db *gorm.DB, categoryID, billingTypeID string, spec InvoiceSpec) *models.Invoice {
	t.Helper()

	if spec.Name == "" {
		spec.Name = fmt.Sprintf("Test Invoice %d", nextID())
	}
	purchaseDate, err := dates.Parse(spec.PurchaseDate)
	if err != nil {
		t.Fatalf("invalid fixture purchase date %q: %v", spec.PurchaseDate, err)
	}

	var endDate *dates.Date
	if !spec.Recurring {
		end := purchaseDate
		if spec.Installments > 0 {
			end = purchaseDate.AddMonths(spec.Installments - 1)
		}
		endDate = &end
	}

	invoice := &models.Invoice{
		Name:          spec.Name,
		PurchaseDate:  purchaseDate,
		EndDate:       endDate,
		Installments:  spec.Installments,
		Recurring:     spec.Recurring,
		Price:         spec.Price,
		CategoryID:    categoryID,
		BillingTypeID: billingTypeID,
	}
	if err := db.Create(invoice).Error; err != nil {
		t.Fatalf("failed to create test invoice: %v", err)
	}
	return invoice
}
