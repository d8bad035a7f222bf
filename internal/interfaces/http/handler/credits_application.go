package handler

import (
	financeapp "github.com/bizledger/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
)

// CreditsApplicationHandler handles applying credit notes against invoices
type CreditsApplicationHandler struct {
	BaseHandler
	appService *financeapp.CreditsApplicationService
}

// NewCreditsApplicationHandler creates a new CreditsApplicationHandler
func NewCreditsApplicationHandler(appService *financeapp.CreditsApplicationService) *CreditsApplicationHandler {
	return &CreditsApplicationHandler{appService: appService}
}

// Apply applies credits from a note to an invoice
func (h *CreditsApplicationHandler) Apply(c *gin.Context) {
	companyID, userID, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	var req financeapp.CreateCreditsApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.CreatedBy = &userID

	app, err := h.appService.Apply(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, app)
}

// GetByID returns one credits application
func (h *CreditsApplicationHandler) GetByID(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid credits application ID")
		return
	}

	app, err := h.appService.GetByID(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, app)
}

// List returns credits applications matching the filter
func (h *CreditsApplicationHandler) List(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	var filter financeapp.CreditsApplicationListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	apps, total, err := h.appService.List(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paginated(c, total, apps)
}

// Delete reverses a credits application, restoring the invoice balance,
// the note's remaining credits and the customer's credit pool.
func (h *CreditsApplicationHandler) Delete(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid credits application ID")
		return
	}

	if err := h.appService.Delete(c.Request.Context(), companyID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
