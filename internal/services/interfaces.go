package services

import "fatura/internal/models"

// InvoiceInput holds the raw create/update fields for an invoice before
// validation. PurchaseDate arrives as a YYYY-MM-DD string; everything else is
// normalized and the end date derived by the record builder.
type InvoiceInput struct {
	Name          string
	PurchaseDate  string
	Installments  int
	Recurring     bool
	Price         float64
	CategoryID    string
	BillingTypeID string
}

// InvoiceFilter holds optional list-query parameters. FromMonth and ToMonth
// are YYYY-MM strings; empty means "not filtered".
type InvoiceFilter struct {
	FromMonth     string
	ToMonth       string
	CategoryID    string
	BillingTypeID string
}

// SummaryDimension selects the grouping axis for monthly summaries.
type SummaryDimension string

const (
	SummaryByCategory    SummaryDimension = "category"
	SummaryByBillingType SummaryDimension = "billingType"
)

// SummaryRow is one group of a monthly summary.
type SummaryRow struct {
	Name       string  `json:"name"`
	TotalPrice float64 `json:"totalPrice"`
}

// InvoiceServicer defines the contract for invoice-related business logic.
type InvoiceServicer interface {
	CreateInvoice(input InvoiceInput) (*models.Invoice, error)
	ListInvoices(filter InvoiceFilter) ([]models.Invoice, error)
	GetInvoiceByID(id string) (*models.Invoice, error)
	UpdateInvoice(id string, input InvoiceInput) (*models.Invoice, error)
	DeleteInvoice(id string) error
	Summarize(fromMonth string, dimension SummaryDimension) ([]SummaryRow, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(name string) (*models.Category, error)
	ListCategories() ([]models.Category, error)
	GetCategoryByID(id string) (*models.Category, error)
	UpdateCategory(id, name string) (*models.Category, error)
	DeleteCategory(id string) error
}

// BillingTypeServicer defines the contract for billing-type business logic.
type BillingTypeServicer interface {
	CreateBillingType(name string) (*models.BillingType, error)
	ListBillingTypes() ([]models.BillingType, error)
	GetBillingTypeByID(id string) (*models.BillingType, error)
	UpdateBillingType(id, name string) (*models.BillingType, error)
	DeleteBillingType(id string) error
}
