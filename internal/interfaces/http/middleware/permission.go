package middleware

import (
	"net/http"

	"github.com/bizledger/backend/internal/domain/identity"
	"github.com/bizledger/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RequireModelPermission gates writes on a model behind the permission
// checker: POST needs add_<model>, PUT and PATCH need change_<model>,
// DELETE needs delete_<model>. Reads pass through; any authenticated
// member of the company may list and view.
func RequireModelPermission(checker identity.PermissionChecker, model string) gin.HandlerFunc {
	return func(c *gin.Context) {
		action, ok := writeAction(c.Request.Method)
		if !ok {
			c.Next()
			return
		}

		companyID, okCompany := GetCompanyID(c)
		userID, okUser := GetUserID(c)
		if !okCompany || !okUser {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
			return
		}

		code := identity.PermissionCode(action, model)
		allowed, err := checker.HasPermission(c.Request.Context(), companyID, userID, code)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse(dto.ErrCodeInternal, "Permission check failed"))
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Missing permission: "+code))
			return
		}
		c.Next()
	}
}

func writeAction(method string) (string, bool) {
	switch method {
	case http.MethodPost:
		return identity.ActionAdd, true
	case http.MethodPut, http.MethodPatch:
		return identity.ActionChange, true
	case http.MethodDelete:
		return identity.ActionDelete, true
	default:
		return "", false
	}
}
