package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fatura/internal/services"
)

// BillingTypeHandler handles billing type-related requests
type BillingTypeHandler struct {
	billingTypeService services.BillingTypeServicer
}

// NewBillingTypeHandler creates a new BillingTypeHandler
func NewBillingTypeHandler(billingTypeService services.BillingTypeServicer) *BillingTypeHandler {
	return &BillingTypeHandler{billingTypeService: billingTypeService}
}

// CreateBillingType handles the creation of a new billing type
// @Summary     Create a billing type
// @Tags        billingTypes
// @Accept      json
// @Produce     json
// @Param       request body LabelRequest true "Billing type name"
// @Success     201 {object} models.BillingType "Billing type created"
// @Failure     400 "Invalid input"
// @Failure     500 "Server error"
// @Router      /billingTypes [post]
func (h *BillingTypeHandler) CreateBillingType(c *gin.Context) {
	var req LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err, nil))
		return
	}

	billingType, err := h.billingTypeService.CreateBillingType(req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, billingType)
}

// ListBillingTypes handles the retrieval of all billing types
// @Summary     List billing types
// @Tags        billingTypes
// @Produce     json
// @Success     200 {array} models.BillingType "List of billing types"
// @Failure     500 "Server error"
// @Router      /billingTypes [get]
func (h *BillingTypeHandler) ListBillingTypes(c *gin.Context) {
	billingTypes, err := h.billingTypeService.ListBillingTypes()
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, billingTypes)
}

// GetBillingTypeByID handles the retrieval of a specific billing type
// @Summary     Get billing type by ID
// @Tags        billingTypes
// @Produce     json
// @Param       id path string true "Billing type ID"
// @Success     200 {object} models.BillingType "Billing type details"
// @Failure     404 "Billing type not found"
// @Failure     500 "Server error"
// @Router      /billingTypes/{id} [get]
func (h *BillingTypeHandler) GetBillingTypeByID(c *gin.Context) {
	billingType, err := h.billingTypeService.GetBillingTypeByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, billingType)
}

// UpdateBillingType handles renaming a billing type
// @Summary     Update billing type
// @Tags        billingTypes
// @Accept      json
// @Produce     json
// @Param       id path string true "Billing type ID"
// @Param       request body LabelRequest true "New billing type name"
// @Success     200 {object} models.BillingType "Updated billing type"
// @Failure     400 "Invalid input"
// @Failure     404 "Billing type not found"
// @Failure     500 "Server error"
// @Router      /billingTypes/{id} [put]
func (h *BillingTypeHandler) UpdateBillingType(c *gin.Context) {
	var req LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err, nil))
		return
	}

	billingType, err := h.billingTypeService.UpdateBillingType(c.Param("id"), req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, billingType)
}

// DeleteBillingType handles deleting a billing type
// @Summary     Delete billing type
// @Tags        billingTypes
// @Produce     json
// @Param       id path string true "Billing type ID"
// @Success     200 "Billing type deleted"
// @Failure     404 "Billing type not found"
// @Failure     500 "Server error"
// @Router      /billingTypes/{id} [delete]
func (h *BillingTypeHandler) DeleteBillingType(c *gin.Context) {
	if err := h.billingTypeService.DeleteBillingType(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	respondDeleted(c)
}
