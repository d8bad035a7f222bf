package handler

import (
	identityapp "github.com/bizledger/backend/internal/application/identity"
	"github.com/gin-gonic/gin"
)

// CompanyHandler exposes the settings of the authenticated tenant
type CompanyHandler struct {
	BaseHandler
	companyService *identityapp.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companyService *identityapp.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Get returns the company
func (h *CompanyHandler) Get(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	company, err := h.companyService.Get(c.Request.Context(), companyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}

// Update changes the company's name and contact details
func (h *CompanyHandler) Update(c *gin.Context) {
	companyID, _, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	var req identityapp.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	company, err := h.companyService.Update(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}
