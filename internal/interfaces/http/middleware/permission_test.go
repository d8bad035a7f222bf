package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// stubChecker grants exactly the codes in its set
type stubChecker struct {
	granted map[string]bool
	err     error
	asked   []string
}

func (s *stubChecker) HasPermission(_ context.Context, _, _ uuid.UUID, code string) (bool, error) {
	s.asked = append(s.asked, code)
	if s.err != nil {
		return false, s.err
	}
	return s.granted[code], nil
}

func newPermissionTestRig(checker *stubChecker, authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	if authenticated {
		engine.Use(func(c *gin.Context) {
			c.Set(CompanyIDKey, uuid.New())
			c.Set(UserIDKey, uuid.New())
		})
	}
	engine.Use(RequireModelPermission(checker, "customer"))
	handle := func(c *gin.Context) { c.Status(http.StatusOK) }
	engine.GET("/", handle)
	engine.POST("/", handle)
	engine.PUT("/:id", handle)
	engine.DELETE("/:id", handle)
	return engine
}

func permRequest(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRequireModelPermission_ReadsPassWithoutCheck(t *testing.T) {
	checker := &stubChecker{}
	engine := newPermissionTestRig(checker, true)

	w := permRequest(engine, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, checker.asked)
}

func TestRequireModelPermission_WriteGranted(t *testing.T) {
	checker := &stubChecker{granted: map[string]bool{"add_customer": true}}
	engine := newPermissionTestRig(checker, true)

	w := permRequest(engine, http.MethodPost, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"add_customer"}, checker.asked)
}

func TestRequireModelPermission_WriteDenied(t *testing.T) {
	checker := &stubChecker{}
	engine := newPermissionTestRig(checker, true)

	w := permRequest(engine, http.MethodDelete, "/"+uuid.NewString())
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, []string{"delete_customer"}, checker.asked)
}

func TestRequireModelPermission_ActionPerMethod(t *testing.T) {
	checker := &stubChecker{granted: map[string]bool{
		"add_customer":    true,
		"change_customer": true,
		"delete_customer": true,
	}}
	engine := newPermissionTestRig(checker, true)

	permRequest(engine, http.MethodPost, "/")
	permRequest(engine, http.MethodPut, "/"+uuid.NewString())
	permRequest(engine, http.MethodDelete, "/"+uuid.NewString())

	assert.Equal(t, []string{"add_customer", "change_customer", "delete_customer"}, checker.asked)
}

func TestRequireModelPermission_Unauthenticated(t *testing.T) {
	checker := &stubChecker{}
	engine := newPermissionTestRig(checker, false)

	w := permRequest(engine, http.MethodPost, "/")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireModelPermission_CheckerError(t *testing.T) {
	checker := &stubChecker{err: errors.New("db down")}
	engine := newPermissionTestRig(checker, true)

	w := permRequest(engine, http.MethodPost, "/")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
