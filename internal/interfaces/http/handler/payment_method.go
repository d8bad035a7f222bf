package handler

import (
	catalogapp "github.com/bizledger/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// PaymentMethodHandler handles payment method CRUD
type PaymentMethodHandler struct {
	BaseHandler
	methodService *catalogapp.PaymentMethodService
}

// NewPaymentMethodHandler creates a new PaymentMethodHandler
func NewPaymentMethodHandler(methodService *catalogapp.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{methodService: methodService}
}

// Create adds a payment method
func (h *PaymentMethodHandler) Create(c *gin.Context) {
	companyID, userID, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	var req catalogapp.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.CreatedBy = &userID

	method, err := h.methodService.Create(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, method)
}

// GetByID returns one payment method
func (h *PaymentMethodHandler) GetByID(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment method ID")
		return
	}

	method, err := h.methodService.GetByID(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, method)
}

// List returns the company's payment methods
func (h *PaymentMethodHandler) List(c *gin.Context) {
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

	methods, total, err := h.methodService.List(c.Request.Context(), companyID, pagination.Page, pagination.PageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paginated(c, total, methods)
}

// Update renames a payment method
func (h *PaymentMethodHandler) Update(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment method ID")
		return
	}

	var req catalogapp.UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	method, err := h.methodService.Update(c.Request.Context(), companyID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, method)
}

// Delete removes a payment method
func (h *PaymentMethodHandler) Delete(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid payment method ID")
		return
	}

	if err := h.methodService.Delete(c.Request.Context(), companyID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
