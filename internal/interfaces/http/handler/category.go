package handler

import (
	catalogapp "github.com/bizledger/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// CategoryHandler handles product category CRUD
type CategoryHandler struct {
	BaseHandler
	categoryService *catalogapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *catalogapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// Create adds a category
func (h *CategoryHandler) Create(c *gin.Context) {
	companyID, userID, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	var req catalogapp.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.CreatedBy = &userID

	category, err := h.categoryService.Create(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, category)
}

// GetByID returns one category
func (h *CategoryHandler) GetByID(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, category)
}

// List returns the company's categories
func (h *CategoryHandler) List(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	var pagination paginationQuery
	if err := c.ShouldBindQuery(&pagination); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	categories, total, err := h.categoryService.List(c.Request.Context(), companyID, pagination.Page, pagination.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paginated(c, total, categories)
}

// Update changes a category
func (h *CategoryHandler) Update(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	var req catalogapp.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), companyID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, category)
}

// Delete removes a category
func (h *CategoryHandler) Delete(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), companyID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
