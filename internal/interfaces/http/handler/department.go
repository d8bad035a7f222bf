package handler

import (
	hrapp "github.com/bizledger/backend/internal/application/hr"
	"github.com/gin-gonic/gin"
)

// DepartmentHandler handles department CRUD
type DepartmentHandler struct {
	BaseHandler
	departmentService *hrapp.DepartmentService
}

// NewDepartmentHandler creates a new DepartmentHandler
func NewDepartmentHandler(departmentService *hrapp.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// Create adds a department
func (h *DepartmentHandler) Create(c *gin.Context) {
	companyID, userID, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	var req hrapp.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.CreatedBy = &userID

	department, err := h.departmentService.Create(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, department)
}

// GetByID returns one department
func (h *DepartmentHandler) GetByID(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid department ID")
		return
	}

	department, err := h.departmentService.GetByID(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, department)
}

// List returns the company's departments
func (h *DepartmentHandler) List(c *gin.Context) {
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

	departments, total, err := h.departmentService.List(c.Request.Context(), companyID, pagination.Page, pagination.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paginated(c, total, departments)
}

// Update changes a department
func (h *DepartmentHandler) Update(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid department ID")
		return
	}

	var req hrapp.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	department, err := h.departmentService.Update(c.Request.Context(), companyID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, department)
}

// Delete removes a department
func (h *DepartmentHandler) Delete(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid department ID")
		return
	}

	if err := h.departmentService.Delete(c.Request.Context(), companyID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
