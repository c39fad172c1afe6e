// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"fatura/internal/dates"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("isodate", validateISODate)
		_ = v.RegisterValidation("yearmonth", validateYearMonth)
		_ = v.RegisterValidation("summary_dimension", validateSummaryDimension)
	}
}

// validateISODate accepts strict YYYY-MM-DD calendar dates.
func validateISODate(fl validator.FieldLevel) bool {
	_, err := dates.Parse(fl.Field().String())
	return err == nil
}

// validateYearMonth accepts strict YYYY-MM months.
func validateYearMonth(fl validator.FieldLevel) bool {
	_, err := dates.ParseMonth(fl.Field().String())
	return err == nil
}

func validateSummaryDimension(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "category", "billingType":
		return true
	}
	return false
}
