// Package handler implements the HTTP endpoints. Handlers bind and
// validate the request, delegate to an application service and render the
// response envelope; no business rules live here.
package handler

import (
	"errors"
	"net/http"

	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/bizledger/backend/internal/interfaces/http/dto"
	"github.com/bizledger/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BaseHandler provides the shared response helpers
type BaseHandler struct{}

// paginationQuery is the query shape for list endpoints without further
// filters. Services fall back to page 1 / size 20 on zero values.
type paginationQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// identity pulls the authenticated company and user out of the context.
// The auth middleware guarantees both on protected routes.
func identityFrom(c *gin.Context) (companyID, userID uuid.UUID, ok bool) {
	companyID, okCompany := middleware.GetCompanyID(c)
	userID, okUser := middleware.GetUserID(c)
	return companyID, userID, okCompany && okUser
}

// parseIDParam parses the ":id" path segment
func parseIDParam(c *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// Success sends a 200 response with the resource body
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the created resource
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Paginated sends a 200 response with the {count, results} envelope
func (h *BaseHandler) Paginated(c *gin.Context, count int64, results any) {
	c.JSON(http.StatusOK, dto.NewListResponse(count, results))
}

// BadRequest sends a 400 response, typically for binding failures
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeBadRequest, message))
}

// Unauthorized sends a 401 response
func (h *BaseHandler) Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
}

// HandleError renders a domain error with the status its code maps to,
// and anything else as an opaque 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.GetHTTPStatus(domainErr.Code), dto.NewErrorResponse(domainErr.Code, domainErr.Message))
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrCodeInternal, "An unexpected error occurred"))
}
