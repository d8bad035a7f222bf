package middleware

import (
	"net/http"
	"strings"

	"github.com/bizledger/backend/internal/infrastructure/auth"
	"github.com/bizledger/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Context keys set by the auth middleware
const (
	ClaimsKey    = "auth_claims"
	CompanyIDKey = "auth_company_id"
	UserIDKey    = "auth_user_id"

	authHeader   = "Authorization"
	bearerPrefix = "Bearer "
)

// AuthConfig wires the auth middleware. The blacklist is optional; when
// nil, revocation is not checked.
type AuthConfig struct {
	JWTService *auth.JWTService
	Blacklist  auth.TokenBlacklist
	Logger     *zap.Logger
}

// Auth validates the bearer token, rejects revoked tokens and stores the
// authenticated identity in the gin context.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeader)
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c, "UNAUTHORIZED", "Authentication required")
			return
		}

		tokenString := strings.TrimPrefix(header, bearerPrefix)
		claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			code, message := authErrorCode(err)
			abortUnauthorized(c, code, message)
			return
		}

		companyID, err := claims.GetCompanyUUID()
		if err != nil {
			abortUnauthorized(c, "INVALID_TOKEN", "Invalid token")
			return
		}
		userID, err := claims.GetUserUUID()
		if err != nil {
			abortUnauthorized(c, "INVALID_TOKEN", "Invalid token")
			return
		}

		if cfg.Blacklist != nil {
			revoked, err := tokenRevoked(c, cfg, claims)
			if err != nil {
				// Revocation state unknown: fail open so an unavailable
				// blacklist store never takes the API down.
				cfg.Logger.Error("token blacklist check failed",
					zap.String("jti", claims.ID), zap.Error(err))
			} else if revoked {
				abortUnauthorized(c, "TOKEN_REVOKED", "Token has been revoked")
				return
			}
		}

		c.Set(ClaimsKey, claims)
		c.Set(CompanyIDKey, companyID)
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func tokenRevoked(c *gin.Context, cfg AuthConfig, claims *auth.Claims) (bool, error) {
	ctx := c.Request.Context()

	revoked, err := cfg.Blacklist.IsBlacklisted(ctx, claims.ID)
	if err != nil || revoked {
		return revoked, err
	}
	if claims.IssuedAt == nil {
		return false, nil
	}
	return cfg.Blacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.IssuedAt.Time)
}

func authErrorCode(err error) (string, string) {
	switch err {
	case auth.ErrExpiredToken:
		return "TOKEN_EXPIRED", "Token has expired"
	case auth.ErrTokenBlacklisted:
		return "TOKEN_REVOKED", "Token has been revoked"
	default:
		return "INVALID_TOKEN", "Invalid token"
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, message))
}

// GetClaims returns the validated claims, or nil outside the auth chain
func GetClaims(c *gin.Context) *auth.Claims {
	if v, exists := c.Get(ClaimsKey); exists {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetCompanyID returns the authenticated user's company
func GetCompanyID(c *gin.Context) (uuid.UUID, bool) {
	if v, exists := c.Get(CompanyIDKey); exists {
		if id, ok := v.(uuid.UUID); ok {
			return id, true
		}
	}
	return uuid.Nil, false
}

// GetUserID returns the authenticated user
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	if v, exists := c.Get(UserIDKey); exists {
		if id, ok := v.(uuid.UUID); ok {
			return id, true
		}
	}
	return uuid.Nil, false
}
