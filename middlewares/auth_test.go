package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"preorder/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": utils.CurrentUserID(c), "email": utils.CurrentEmail(c)})
	})
	r.GET("/admin", AuthMiddleware(testSecret, "admin"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/maybe", OptionalAuth(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": utils.CurrentUserID(c)})
	})
	return r
}

func token(t *testing.T, id uint, role string) string {
	t.Helper()
	tok, err := utils.GenerateToken(id, role, "u@x.com", testSecret, time.Hour)
	require.NoError(t, err)
	return tok
}

func do(r *gin.Engine, path, tok string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter()

	assert.Equal(t, http.StatusUnauthorized, do(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/me", "garbage").Code)

	w := do(r, "/me", token(t, 3, "student"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":3,"email":"u@x.com"}`, w.Body.String())
}

func TestAuthMiddleware_RoleGate(t *testing.T) {
	r := newRouter()

	w := do(r, "/admin", token(t, 3, "student"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"forbidden"}`, w.Body.String())

	assert.Equal(t, http.StatusNoContent, do(r, "/admin", token(t, 1, "admin")).Code)
}

func TestOptionalAuth(t *testing.T) {
	r := newRouter()

	assert.JSONEq(t, `{"id":0}`, do(r, "/maybe", "").Body.String())
	assert.JSONEq(t, `{"id":0}`, do(r, "/maybe", "garbage").Body.String())
	assert.JSONEq(t, `{"id":9}`, do(r, "/maybe", token(t, 9, "student")).Body.String())
	assert.JSONEq(t, `{"id":9}`, do(r, "/maybe?token="+token(t, 9, "student"), "").Body.String())
}
