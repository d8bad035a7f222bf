package handler

import (
	tradeapp "github.com/bizledger/backend/internal/application/trade"
	"github.com/gin-gonic/gin"
)

// CreditNoteHandler handles credit note CRUD
type CreditNoteHandler struct {
	BaseHandler
	noteService *tradeapp.CreditNoteService
}

// NewCreditNoteHandler creates a new CreditNoteHandler
func NewCreditNoteHandler(noteService *tradeapp.CreditNoteService) *CreditNoteHandler {
	return &CreditNoteHandler{noteService: noteService}
}

// Create adds a credit note with its line items
func (h *CreditNoteHandler) Create(c *gin.Context) {
	companyID, userID, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	var req tradeapp.CreateCreditNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.CreatedBy = &userID

	note, err := h.noteService.Create(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, note)
}

// GetByID returns one credit note
func (h *CreditNoteHandler) GetByID(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid credit note ID")
		return
	}

	note, err := h.noteService.GetByID(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, note)
}

// List returns credit notes matching the filter
func (h *CreditNoteHandler) List(c *gin.Context) {
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

	notes, total, err := h.noteService.List(c.Request.Context(), companyID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Paginated(c, total, notes)
}

// Update changes a credit note's details, status or line items
func (h *CreditNoteHandler) Update(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid credit note ID")
		return
	}

	var req tradeapp.UpdateCreditNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	note, err := h.noteService.Update(c.Request.Context(), companyID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, note)
}

// Delete removes a credit note
func (h *CreditNoteHandler) Delete(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid credit note ID")
		return
	}

	if err := h.noteService.Delete(c.Request.Context(), companyID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
