package handler

import (
	partnerapp "github.com/bizledger/backend/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// CustomerHandler handles customer CRUD
type CustomerHandler struct {
	BaseHandler
	customerService *partnerapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *partnerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create adds a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	companyID, userID, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	var req partnerapp.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.CreatedBy = &userID

	customer, err := h.customerService.Create(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, customer)
}

// GetByID returns one customer
func (h *CustomerHandler) GetByID(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// List returns customers matching the filter
func (h *CustomerHandler) List(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	var filter partnerapp.CustomerListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customers, total, err := h.customerService.List(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paginated(c, total, customers)
}

// Update changes a customer's details
func (h *CustomerHandler) Update(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	var req partnerapp.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), companyID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, customer)
}

// Delete removes a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), companyID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
