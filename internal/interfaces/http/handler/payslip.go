package handler

import (
	hrapp "github.com/bizledger/backend/internal/application/hr"
	"github.com/gin-gonic/gin"
)

// PayslipHandler handles payslip CRUD
type PayslipHandler struct {
	BaseHandler
	payslipService *hrapp.PayslipService
}

// NewPayslipHandler creates a new PayslipHandler
func NewPayslipHandler(payslipService *hrapp.PayslipService) *PayslipHandler {
	return &PayslipHandler{payslipService: payslipService}
}

// Create adds a payslip with its pay items
func (h *PayslipHandler) Create(c *gin.Context) {
	companyID, userID, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	var req hrapp.CreatePayslipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.CreatedBy = &userID

	payslip, err := h.payslipService.Create(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, payslip)
}

// GetByID returns one payslip
func (h *PayslipHandler) GetByID(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payslip ID")
		return
	}

	payslip, err := h.payslipService.GetByID(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payslip)
}

// List returns payslips matching the filter
func (h *PayslipHandler) List(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	var filter hrapp.PayslipListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payslips, total, err := h.payslipService.List(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paginated(c, total, payslips)
}

// Update changes a payslip's details, status or pay items
func (h *PayslipHandler) Update(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payslip ID")
		return
	}

	var req hrapp.UpdatePayslipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payslip, err := h.payslipService.Update(c.Request.Context(), companyID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payslip)
}

// Delete removes a payslip
func (h *PayslipHandler) Delete(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payslip ID")
		return
	}

	if err := h.payslipService.Delete(c.Request.Context(), companyID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
