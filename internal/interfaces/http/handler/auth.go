package handler

import (
	identityapp "github.com/bizledger/backend/internal/application/identity"
	"github.com/bizledger/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup, login, token refresh, logout and profile
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup registers a company with its owning user and signs the owner in
func (h *AuthHandler) Signup(c *gin.Context) {
	var req identityapp.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Signup(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Login authenticates by email and password and issues a token pair
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Refresh exchanges a refresh token for a fresh pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req identityapp.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tokens, err := h.authService.Refresh(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tokens)
}

// Logout revokes the presented access token
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.Unauthorized(c)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// LogoutEverywhere revokes every token issued to the user
func (h *AuthHandler) LogoutEverywhere(c *gin.Context) {
	_, userID, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	if err := h.authService.LogoutEverywhere(c.Request.Context(), userID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Profile returns the authenticated user with company, preferences and
// the effective permission set.
func (h *AuthHandler) Profile(c *gin.Context) {
	companyID, userID, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	profile, err := h.authService.Profile(c.Request.Context(), companyID, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// UpdateProfile changes the authenticated user's own account details
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	companyID, userID, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	var req identityapp.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), companyID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// GetConfig returns the user's interface preferences
func (h *AuthHandler) GetConfig(c *gin.Context) {
	_, userID, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	config, err := h.authService.GetConfig(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, config)
}

// UpdateConfig replaces the user's interface preferences
func (h *AuthHandler) UpdateConfig(c *gin.Context) {
	_, userID, ok := identityFrom(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	var req identityapp.UpdateUserConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	config, err := h.authService.UpdateConfig(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, config)
}
