// Package errors provides custom error types for the invoice tracker API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Invoice validation errors.
var (
	ErrInvalidPurchaseDate = &AppError{Code: "INVALID_DATE", Message: "Incorrect purchaseDate", StatusCode: http.StatusBadRequest}
	ErrInvalidInstallments = &AppError{Code: "INVALID_INSTALLMENTS", Message: "Incorrect installments", StatusCode: http.StatusBadRequest}
	ErrInvalidPrice        = &AppError{Code: "INVALID_PRICE", Message: "Incorrect price", StatusCode: http.StatusBadRequest}
)

// List and summary query errors.
var (
	ErrInvalidDateRange = &AppError{Code: "INVALID_DATE_RANGE", Message: "Incorrect month, expected YYYY-MM", StatusCode: http.StatusBadRequest}
	ErrMissingFromDate  = &AppError{Code: "MISSING_FROM_DATE", Message: "Missing fromMonth param", StatusCode: http.StatusBadRequest}
	ErrInvalidDimension = &AppError{Code: "INVALID_DIMENSION", Message: "Incorrect dimension, expected category or billingType", StatusCode: http.StatusBadRequest}
)

// Lookup errors.
var (
	ErrInvoiceNotFound     = &AppError{Code: "INVOICE_NOT_FOUND", Message: "Invoice not found", StatusCode: http.StatusNotFound}
	ErrCategoryNotFound    = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found", StatusCode: http.StatusNotFound}
	ErrBillingTypeNotFound = &AppError{Code: "BILLING_TYPE_NOT_FOUND", Message: "Billing type not found", StatusCode: http.StatusNotFound}
)
