package handler

import (
	tradeapp "github.com/bizledger/backend/internal/application/trade"
	"github.com/gin-gonic/gin"
)

// ReceiveHandler handles goods receive CRUD
type ReceiveHandler struct {
	BaseHandler
	receiveService *tradeapp.ReceiveService
}

// NewReceiveHandler creates a new ReceiveHandler
func NewReceiveHandler(receiveService *tradeapp.ReceiveService) *ReceiveHandler {
	return &ReceiveHandler{receiveService: receiveService}
}

// Create adds a receive with its line items
func (h *ReceiveHandler) Create(c *gin.Context) {
	companyID, userID, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	var req tradeapp.CreateReceiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.CreatedBy = &userID

	receive, err := h.receiveService.Create(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, receive)
}

// GetByID returns one receive
func (h *ReceiveHandler) GetByID(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid receive ID")
		return
	}

	receive, err := h.receiveService.GetByID(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, receive)
}

// List returns receives matching the filter
func (h *ReceiveHandler) List(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	var filter tradeapp.DocumentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	receives, total, err := h.receiveService.List(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paginated(c, total, receives)
}

// Update changes a receive's details, status or line items
func (h *ReceiveHandler) Update(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid receive ID")
		return
	}

	var req tradeapp.UpdateReceiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	receive, err := h.receiveService.Update(c.Request.Context(), companyID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, receive)
}

// Delete removes a receive
func (h *ReceiveHandler) Delete(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid receive ID")
		return
	}

	if err := h.receiveService.Delete(c.Request.Context(), companyID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
