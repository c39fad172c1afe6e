package services

import (
	"errors"
	"math"
	"strings"

	"gorm.io/gorm"

	"fatura/internal/dates"
	apperrors "fatura/internal/errors"
	"fatura/internal/filter"
	"fatura/internal/models"
)

// invoiceService handles invoice-related business logic.
type invoiceService struct {
	db *gorm.DB
}

// NewInvoiceService creates a new InvoiceServicer.
func NewInvoiceService(db *gorm.DB) InvoiceServicer {
	return &invoiceService{db: db}
}

// buildInvoiceRecord validates the raw input and derives the end date.
// The end date is a pure function of purchase date, installments, and the
// recurring flag: NULL when recurring, purchase date + (installments-1)
// months for installment invoices (the first installment occupies the first
// month), otherwise the purchase date itself.
func buildInvoiceRecord(input InvoiceInput) (*models.Invoice, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invoice name is required")
	}
	if input.CategoryID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "categoryId is required")
	}
	if input.BillingTypeID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "billingTypeId is required")
	}

	purchaseDate, err := dates.Parse(input.PurchaseDate)
	if err != nil {
		return nil, apperrors.ErrInvalidPurchaseDate
	}
	if input.Installments < 0 {
		return nil, apperrors.ErrInvalidInstallments
	}
	if math.IsNaN(input.Price) || math.IsInf(input.Price, 0) || input.Price < 0 {
		return nil, apperrors.ErrInvalidPrice
	}

	var endDate *dates.Date
	if !input.Recurring {
		end := purchaseDate
		if input.Installments > 0 {
			end = purchaseDate.AddMonths(input.Installments - 1)
		}
		endDate = &end
	}

	return &models.Invoice{
		Name:          input.Name,
		PurchaseDate:  purchaseDate,
		EndDate:       endDate,
		Installments:  input.Installments,
		Recurring:     input.Recurring,
		Price:         input.Price,
		CategoryID:    input.CategoryID,
		BillingTypeID: input.BillingTypeID,
	}, nil
}

// compileInvoiceFilter turns list-query parameters into a predicate
// expression. With a month window set, an invoice matches when its purchase
// date falls inside the window, when its installment span reaches into the
// window (end date on or after the window start, purchase date not past the
// window end), or unconditionally when it is recurring. Without any date
// filter the predicate is a plain conjunction of the id equality filters.
func compileInvoiceFilter(f InvoiceFilter) (filter.Expr, error) {
	if f.FromMonth == "" && f.ToMonth != "" {
		return nil, apperrors.ErrMissingFromDate
	}

	var conjuncts []filter.Expr
	if f.FromMonth != "" {
		from, err := dates.ParseMonth(f.FromMonth)
		if err != nil {
			return nil, apperrors.ErrInvalidDateRange
		}
		windowEnd := from.EndOfMonth()
		if f.ToMonth != "" {
			to, err := dates.ParseMonth(f.ToMonth)
			if err != nil {
				return nil, apperrors.ErrInvalidDateRange
			}
			windowEnd = to.EndOfMonth()
		}
		conjuncts = append(conjuncts, filter.Or(
			filter.And(
				filter.Gte("purchase_date", from),
				filter.Lte("purchase_date", windowEnd),
			),
			filter.And(
				filter.Gte("end_date", from),
				filter.Lte("purchase_date", windowEnd),
			),
			filter.Eq("recurring", true),
		))
	}
	if f.CategoryID != "" {
		conjuncts = append(conjuncts, filter.Eq("category_id", f.CategoryID))
	}
	if f.BillingTypeID != "" {
		conjuncts = append(conjuncts, filter.Eq("billing_type_id", f.BillingTypeID))
	}
	return filter.And(conjuncts...), nil
}

// applyExpr attaches a compiled predicate to a query.
func applyExpr(q *gorm.DB, expr filter.Expr) *gorm.DB {
	if expr == nil {
		return q
	}
	sql, args := expr.SQL()
	if sql == "" {
		return q
	}
	return q.Where(sql, args...)
}

// CreateInvoice validates the input, derives the end date, checks the
// referenced category and billing type, and stores the invoice. Nothing is
// written unless validation fully succeeds.
func (s *invoiceService) CreateInvoice(input InvoiceInput) (*models.Invoice, error) {
	invoice, err := buildInvoiceRecord(input)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(invoice); err != nil {
		return nil, err
	}

	if err := s.db.Create(invoice).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return invoice, nil
}

// checkReferences verifies the invoice's category and billing type exist.
func (s *invoiceService) checkReferences(invoice *models.Invoice) error {
	var category models.Category
	if err := s.db.Where("id = ?", invoice.CategoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var billingType models.BillingType
	if err := s.db.Where("id = ?", invoice.BillingTypeID).First(&billingType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBillingTypeNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ListInvoices retrieves invoices matching the filter, with their category
// and billing type joined in.
func (s *invoiceService) ListInvoices(f InvoiceFilter) ([]models.Invoice, error) {
	expr, err := compileInvoiceFilter(f)
	if err != nil {
		return nil, err
	}

	var invoices []models.Invoice
	q := applyExpr(s.db.Model(&models.Invoice{}), expr)
	if err := q.Preload("Category").Preload("BillingType").Find(&invoices).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return invoices, nil
}

// GetInvoiceByID retrieves a single invoice with its labels joined in.
func (s *invoiceService) GetInvoiceByID(id string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := s.db.Preload("Category").Preload("BillingType").
		Where("id = ?", id).First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &invoice, nil
}

// UpdateInvoice replaces an invoice's fields, re-running the full validation
// and end-date derivation. The stored end date is never trusted.
func (s *invoiceService) UpdateInvoice(id string, input InvoiceInput) (*models.Invoice, error) {
	var existing models.Invoice
	if err := s.db.Where("id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvoiceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	invoice, err := buildInvoiceRecord(input)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(invoice); err != nil {
		return nil, err
	}

	// end_date must be written through a nil-able value so a recurring
	// update clears a previously stored date.
	var endDate interface{}
	if invoice.EndDate != nil {
		endDate = *invoice.EndDate
	}
	updates := map[string]interface{}{
		"name":            invoice.Name,
		"purchase_date":   invoice.PurchaseDate,
		"end_date":        endDate,
		"installments":    invoice.Installments,
		"recurring":       invoice.Recurring,
		"price":           invoice.Price,
		"category_id":     invoice.CategoryID,
		"billing_type_id": invoice.BillingTypeID,
	}
	if err := s.db.Model(&existing).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetInvoiceByID(id)
}

// DeleteInvoice soft-deletes an invoice by id.
func (s *invoiceService) DeleteInvoice(id string) error {
	var invoice models.Invoice
	if err := s.db.Where("id = ?", id).First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvoiceNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&invoice).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// summaryGroup is one GROUP BY row before label names are resolved.
type summaryGroup struct {
	GroupID    string  `gorm:"column:group_id"`
	TotalPrice float64 `gorm:"column:total_price"`
}

// Summarize totals invoice prices for one month, grouped by category or
// billing type, ordered by descending total. The month window uses the same
// predicate as ListInvoices, so installment spans and recurring invoices
// count toward the month they are active in.
func (s *invoiceService) Summarize(fromMonth string, dimension SummaryDimension) ([]SummaryRow, error) {
	if fromMonth == "" {
		return nil, apperrors.ErrMissingFromDate
	}

	var groupColumn string
	switch dimension {
	case SummaryByCategory:
		groupColumn = "category_id"
	case SummaryByBillingType:
		groupColumn = "billing_type_id"
	default:
		return nil, apperrors.ErrInvalidDimension
	}

	expr, err := compileInvoiceFilter(InvoiceFilter{FromMonth: fromMonth})
	if err != nil {
		return nil, err
	}

	var groups []summaryGroup
	q := applyExpr(s.db.Model(&models.Invoice{}), expr)
	err = q.Select(groupColumn + " AS group_id, SUM(price) AS total_price").
		Group(groupColumn).
		Order("total_price DESC").
		Scan(&groups).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	names, err := s.labelNames(dimension)
	if err != nil {
		return nil, err
	}

	rows := make([]SummaryRow, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, SummaryRow{
			Name:       names[g.GroupID],
			TotalPrice: g.TotalPrice,
		})
	}
	return rows, nil
}

// labelNames maps label ids to display names for the given dimension.
func (s *invoiceService) labelNames(dimension SummaryDimension) (map[string]string, error) {
	names := make(map[string]string)
	switch dimension {
	case SummaryByCategory:
		var categories []models.Category
		if err := s.db.Find(&categories).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, c := range categories {
			names[c.ID] = c.Name
		}
	case SummaryByBillingType:
		var billingTypes []models.BillingType
		if err := s.db.Find(&billingTypes).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, b := range billingTypes {
			names[b.ID] = b.Name
		}
	}
	return names, nil
}
