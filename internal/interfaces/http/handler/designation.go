package handler

import (
	hrapp "github.com/bizledger/backend/internal/application/hr"
	"github.com/gin-gonic/gin"
)

// DesignationHandler handles designation CRUD
type DesignationHandler struct {
	BaseHandler
	designationService *hrapp.DesignationService
}

// NewDesignationHandler creates a new DesignationHandler
func NewDesignationHandler(designationService *hrapp.DesignationService) *DesignationHandler {
	return &DesignationHandler{designationService: designationService}
}

// Create adds a designation under a department
func (h *DesignationHandler) Create(c *gin.Context) {
	companyID, userID, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	var req hrapp.CreateDesignationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.CreatedBy = &userID

	designation, err := h.designationService.Create(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, designation)
}

// GetByID returns one designation
func (h *DesignationHandler) GetByID(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid designation ID")
		return
	}

	designation, err := h.designationService.GetByID(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, designation)
}

// List returns the company's designations
func (h *DesignationHandler) List(c *gin.Context) {
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

	designations, total, err := h.designationService.List(c.Request.Context(), companyID, pagination.Page, pagination.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paginated(c, total, designations)
}

// Update changes a designation
func (h *DesignationHandler) Update(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid designation ID")
		return
	}

	var req hrapp.UpdateDesignationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	designation, err := h.designationService.Update(c.Request.Context(), companyID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, designation)
}

// Delete removes a designation
func (h *DesignationHandler) Delete(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid designation ID")
		return
	}

	if err := h.designationService.Delete(c.Request.Context(), companyID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
