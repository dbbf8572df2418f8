package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qmexai/ramadandata/internal/app/models"
	"github.com/qmexai/ramadandata/internal/pkg/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newCodec(t *testing.T, ttl, window time.Duration) *auth.SessionCodec {
	t.Helper()
	codec, err := auth.NewSessionCodec(auth.SessionConfig{SecretKey: "gate-secret", TTL: ttl, RefreshWindow: window})
	require.NoError(t, err)
	return codec
}

func gatedRouter(m *AuthMiddleware) *gin.Engine {
	r := gin.New()
	r.Use(m.PageGate())
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	for _, path := range []string{"/", "/login", "/admin/users", "/dashboard", "/api", "/api/auth/login", "/about"} {
		r.GET(path, ok)
	}
	return r
}

func doGet(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPageGateWithoutSession(t *testing.T) {
	m := NewAuthMiddleware(newCodec(t, 24*time.Hour, 12*time.Hour), CookieOptions{}, zerolog.Nop())
	r := gatedRouter(m)

	for _, path := range []string{"/", "/admin/users", "/dashboard"} {
		w := doGet(r, path, "")
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}

	for _, path := range []string{"/login", "/api/auth/login", "/api", "/about"} {
		w := doGet(r, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestPageGateTreatsBadTokenAsNoSession(t *testing.T) {
	m := NewAuthMiddleware(newCodec(t, 24*time.Hour, 12*time.Hour), CookieOptions{}, zerolog.Nop())
	r := gatedRouter(m)

	w := doGet(r, "/", "garbage")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = doGet(r, "/login", "garbage")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPageGateWithSession(t *testing.T) {
	codec := newCodec(t, 24*time.Hour, 12*time.Hour)
	m := NewAuthMiddleware(codec, CookieOptions{}, zerolog.Nop())
	r := gatedRouter(m)

	token, err := codec.Encrypt(auth.SessionPayload{ID: 1, Role: models.RoleAdmin, Name: "a"})
	require.NoError(t, err)

	w := doGet(r, "/login", token)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	for _, path := range []string{"/", "/admin/users", "/dashboard", "/api/auth/login", "/api"} {
		w := doGet(r, path, token)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Empty(t, w.Header().Get("Set-Cookie"), path)
	}
}

func TestPageGateRefreshesNearExpiry(t *testing.T) {
	codec := newCodec(t, 2*time.Hour, 2*time.Hour)
	m := NewAuthMiddleware(codec, CookieOptions{}, zerolog.Nop())
	r := gatedRouter(m)

	token, err := codec.Encrypt(auth.SessionPayload{ID: 1, Role: models.RoleAdmin, Name: "a"})
	require.NoError(t, err)

	w := doGet(r, "/", token)
	assert.Equal(t, http.StatusOK, w.Code)
	cookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, auth.SessionCookieName+"=")
	assert.Contains(t, cookie, "HttpOnly")
	assert.Contains(t, cookie, "SameSite=Strict")
	assert.NotContains(t, cookie, token)
}

func TestRequireSession(t *testing.T) {
	codec := newCodec(t, 24*time.Hour, 12*time.Hour)
	m := NewAuthMiddleware(codec, CookieOptions{}, zerolog.Nop())

	r := gin.New()
	r.GET("/api", m.RequireSession(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": GetSession(c).ID})
	})

	w := doGet(r, "/api", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"Unauthorized"`)

	token, err := codec.Encrypt(auth.SessionPayload{ID: 42, Role: models.RoleAdmin, Name: "a"})
	require.NoError(t, err)
	w = doGet(r, "/api", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":42}`, w.Body.String())
}

func TestRequireSuperuser(t *testing.T) {
	codec := newCodec(t, 24*time.Hour, 12*time.Hour)
	m := NewAuthMiddleware(codec, CookieOptions{}, zerolog.Nop())

	r := gin.New()
	r.GET("/api/users", m.RequireSuperuser(), func(c *gin.Context) { c.Status(http.StatusOK) })

	admin, err := codec.Encrypt(auth.SessionPayload{ID: 2, Role: models.RoleAdmin, Name: "a"})
	require.NoError(t, err)
	super, err := codec.Encrypt(auth.SessionPayload{ID: 1, Role: models.RoleSuperuser, Name: "s"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, doGet(r, "/api/users", "").Code)
	assert.Equal(t, http.StatusForbidden, doGet(r, "/api/users", admin).Code)
	assert.Equal(t, http.StatusOK, doGet(r, "/api/users", super).Code)
}
