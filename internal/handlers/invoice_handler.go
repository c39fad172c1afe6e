package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fatura/internal/errors"
	"fatura/internal/services"
)

// InvoiceHandler handles invoice-related requests
type InvoiceHandler struct {
	invoiceService services.InvoiceServicer
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService services.InvoiceServicer) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// InvoiceRequest is the request payload for creating or updating an invoice.
// The same shape serves POST and PUT: both run the full validation and
// end-date derivation.
type InvoiceRequest struct {
	Name          string   `json:"name" binding:"required"`
	PurchaseDate  string   `json:"purchaseDate" binding:"required,isodate"`
	Installments  int      `json:"installments" binding:"gte=0"`
	Recurring     bool     `json:"recurring"`
	Price         *float64 `json:"price" binding:"required"`
	CategoryID    string   `json:"categoryId" binding:"required"`
	BillingTypeID string   `json:"billingTypeId" binding:"required"`
}

func (r InvoiceRequest) toInput() services.InvoiceInput {
	return services.InvoiceInput{
		Name:          r.Name,
		PurchaseDate:  r.PurchaseDate,
		Installments:  r.Installments,
		Recurring:     r.Recurring,
		Price:         *r.Price,
		CategoryID:    r.CategoryID,
		BillingTypeID: r.BillingTypeID,
	}
}

// invoiceFields maps binding failures to the discriminated invoice errors.
var invoiceFields = map[string]*apperrors.AppError{
	"PurchaseDate": apperrors.ErrInvalidPurchaseDate,
	"Installments": apperrors.ErrInvalidInstallments,
	"Price":        apperrors.ErrInvalidPrice,
}

// ListInvoicesQuery holds the optional list filters.
type ListInvoicesQuery struct {
	FromMonth     string `form:"fromMonth" binding:"omitempty,yearmonth"`
	ToMonth       string `form:"toMonth" binding:"omitempty,yearmonth"`
	CategoryID    string `form:"categoryId"`
	BillingTypeID string `form:"billingTypeId"`
}

var listInvoicesFields = map[string]*apperrors.AppError{
	"FromMonth": apperrors.ErrInvalidDateRange,
	"ToMonth":   apperrors.ErrInvalidDateRange,
}

// SummaryQuery holds the summary parameters. Presence of fromMonth and the
// dimension value are re-checked by the service, which owns the contract.
type SummaryQuery struct {
	FromMonth string `form:"fromMonth" binding:"omitempty,yearmonth"`
	Dimension string `form:"dimension" binding:"omitempty,summary_dimension"`
}

var summaryFields = map[string]*apperrors.AppError{
	"FromMonth": apperrors.ErrInvalidDateRange,
	"Dimension": apperrors.ErrInvalidDimension,
}

// CreateInvoice handles the creation of a new invoice
// @Summary     Create an invoice
// @Description Record a purchase; the end date is derived from the purchase date, installments, and recurring flag
// @Tags        invoices
// @Accept      json
// @Produce     json
// @Param       request body InvoiceRequest true "Invoice details"
// @Success     201 {object} models.Invoice "Invoice created"
// @Failure     400 "Invalid input"
// @Failure     404 "Category or billing type not found"
// @Failure     500 "Server error"
// @Router      /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err, invoiceFields))
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, invoice)
}

// ListInvoices handles the retrieval of invoices, optionally filtered by a
// month window, category, and billing type
// @Summary     List invoices
// @Description List invoices active in the given month window, including running installments and recurring invoices
// @Tags        invoices
// @Produce     json
// @Param       fromMonth query string false "Window start (YYYY-MM)"
// @Param       toMonth query string false "Window end month (YYYY-MM), requires fromMonth"
// @Param       categoryId query string false "Filter by category"
// @Param       billingTypeId query string false "Filter by billing type"
// @Success     200 {array} models.Invoice "List of invoices"
// @Failure     400 "Invalid filters"
// @Failure     500 "Server error"
// @Router      /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var query ListInvoicesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, bindingError(err, listInvoicesFields))
		return
	}

	invoices, err := h.invoiceService.ListInvoices(services.InvoiceFilter{
		FromMonth:     query.FromMonth,
		ToMonth:       query.ToMonth,
		CategoryID:    query.CategoryID,
		BillingTypeID: query.BillingTypeID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, invoices)
}

// GetInvoiceByID handles the retrieval of a specific invoice
// @Summary     Get invoice by ID
// @Tags        invoices
// @Produce     json
// @Param       id path string true "Invoice ID"
// @Success     200 {object} models.Invoice "Invoice details"
// @Failure     404 "Invoice not found"
// @Failure     500 "Server error"
// @Router      /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoiceByID(c *gin.Context) {
	invoice, err := h.invoiceService.GetInvoiceByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, invoice)
}

// UpdateInvoice handles updating an invoice
// @Summary     Update invoice
// @Description Replace an invoice's fields; validation and end-date derivation run exactly as on create
// @Tags        invoices
// @Accept      json
// @Produce     json
// @Param       id path string true "Invoice ID"
// @Param       request body InvoiceRequest true "Updated invoice details"
// @Success     200 {object} models.Invoice "Updated invoice"
// @Failure     400 "Invalid input"
// @Failure     404 "Invoice not found"
// @Failure     500 "Server error"
// @Router      /invoices/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err, invoiceFields))
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Param("id"), req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, invoice)
}

// DeleteInvoice handles deleting an invoice
// @Summary     Delete invoice
// @Tags        invoices
// @Produce     json
// @Param       id path string true "Invoice ID"
// @Success     200 "Invoice deleted"
// @Failure     404 "Invoice not found"
// @Failure     500 "Server error"
// @Router      /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.invoiceService.DeleteInvoice(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	respondDeleted(c)
}

// GetSummary handles the monthly summary
// @Summary     Monthly summary
// @Description Total invoice prices for one month grouped by category or billing type, ordered by descending total
// @Tags        invoices
// @Produce     json
// @Param       fromMonth query string true "Month (YYYY-MM)"
// @Param       dimension query string true "Grouping dimension" Enums(category, billingType)
// @Success     200 {array} services.SummaryRow "Summary rows"
// @Failure     400 "Invalid parameters"
// @Failure     500 "Server error"
// @Router      /invoices/summary [get]
func (h *InvoiceHandler) GetSummary(c *gin.Context) {
	var query SummaryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, bindingError(err, summaryFields))
		return
	}

	rows, err := h.invoiceService.Summarize(query.FromMonth, services.SummaryDimension(query.Dimension))
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, rows)
}
