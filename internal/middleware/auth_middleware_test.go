package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joinwork/joinwork/internal/app/models"
	"github.com/joinwork/joinwork/internal/pkg/auth"
)

func testRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "joinwork-test",
	})
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	protected := router.Group("", m.JWTAuth())
	protected.GET("/whoami", func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	protected.GET("/company-only", m.RoleRequired(string(models.RoleCompany)), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	protected.GET("/staff", m.RoleRequired(string(models.RoleCompany), string(models.RoleMinistry)), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, role models.Role) string {
	t.Helper()
	token, err := jwtService.GenerateToken(&models.User{
		ID:       7,
		FullName: "Sara Ahmed",
		Email:    "sara@example.com",
		Role:     role,
	})
	require.NoError(t, err)
	return token
}

func doRequest(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router, _ := testRouter(t)
	w := doRequest(router, "/whoami", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthBadToken(t *testing.T) {
	router, _ := testRouter(t)
	w := doRequest(router, "/whoami", "not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
	router, jwtService := testRouter(t)
	w := doRequest(router, "/whoami", tokenFor(t, jwtService, models.RoleGraduate))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestRoleRequiredRejectsOtherRole(t *testing.T) {
	router, jwtService := testRouter(t)
	w := doRequest(router, "/company-only", tokenFor(t, jwtService, models.RoleGraduate))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleRequiredAllowsMatchingRole(t *testing.T) {
	router, jwtService := testRouter(t)
	w := doRequest(router, "/company-only", tokenFor(t, jwtService, models.RoleCompany))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleRequiredAllowsAnyListedRole(t *testing.T) {
	router, jwtService := testRouter(t)

	w := doRequest(router, "/staff", tokenFor(t, jwtService, models.RoleMinistry))
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "/staff", tokenFor(t, jwtService, models.RoleGraduate))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
