package handler

import (
	hrapp "github.com/bizledger/backend/internal/application/hr"
	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles employee CRUD and resume storage
type EmployeeHandler struct {
	BaseHandler
	employeeService *hrapp.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService *hrapp.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// Create adds an employee
func (h *EmployeeHandler) Create(c *gin.Context) {
	companyID, userID, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	var req hrapp.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.CreatedBy = &userID

	employee, err := h.employeeService.Create(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, employee)
}

// GetByID returns one employee
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employee)
}

// List returns the company's employees
func (h *EmployeeHandler) List(c *gin.Context) {
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

	employees, total, err := h.employeeService.List(c.Request.Context(), companyID, pagination.Page, pagination.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paginated(c, total, employees)
}

// Update changes an employee's details
func (h *EmployeeHandler) Update(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	var req hrapp.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), companyID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employee)
}

// Delete removes an employee
func (h *EmployeeHandler) Delete(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	if err := h.employeeService.Delete(c.Request.Context(), companyID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GenerateResumeUploadURL issues a presigned PUT URL for the resume file
func (h *EmployeeHandler) GenerateResumeUploadURL(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	var req hrapp.ResumeUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	presigned, err := h.employeeService.GenerateResumeUploadURL(c.Request.Context(), companyID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, presigned)
}

// ConfirmResumeUpload records the uploaded object key on the employee
func (h *EmployeeHandler) ConfirmResumeUpload(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	var req hrapp.ConfirmResumeUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	employee, err := h.employeeService.ConfirmResumeUpload(c.Request.Context(), companyID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employee)
}

// GenerateResumeDownloadURL issues a presigned GET URL for the resume file
func (h *EmployeeHandler) GenerateResumeDownloadURL(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid employee ID")
		return
	}

	presigned, err := h.employeeService.GenerateResumeDownloadURL(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, presigned)
}
