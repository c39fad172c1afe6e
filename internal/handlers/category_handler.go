package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fatura/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// LabelRequest is the request payload for creating or renaming a labeled
// entity (category or billing type).
type LabelRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategory handles the creation of a new category
// @Summary     Create a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body LabelRequest true "Category name"
// @Success     201 {object} models.Category "Category created"
// @Failure     400 "Invalid input"
// @Failure     500 "Server error"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err, nil))
		return
	}

	category, err := h.categoryService.CreateCategory(req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, category)
}

// ListCategories handles the retrieval of all categories
// @Summary     List categories
// @Tags        categories
// @Produce     json
// @Success     200 {array} models.Category "List of categories"
// @Failure     500 "Server error"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, categories)
}

// GetCategoryByID handles the retrieval of a specific category
// @Summary     Get category by ID
// @Tags        categories
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} models.Category "Category details"
// @Failure     404 "Category not found"
// @Failure     500 "Server error"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	category, err := h.categoryService.GetCategoryByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, category)
}

// UpdateCategory handles renaming a category
// @Summary     Update category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id path string true "Category ID"
// @Param       request body LabelRequest true "New category name"
// @Success     200 {object} models.Category "Updated category"
// @Failure     400 "Invalid input"
// @Failure     404 "Category not found"
// @Failure     500 "Server error"
// @Router      /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err, nil))
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Param("id"), req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, category)
}

// DeleteCategory handles deleting a category
// @Summary     Delete category
// @Tags        categories
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 "Category deleted"
// @Failure     404 "Category not found"
// @Failure     500 "Server error"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.DeleteCategory(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	respondDeleted(c)
}
