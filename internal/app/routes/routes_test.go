package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qmexai/ramadandata/internal/app/controllers"
	"github.com/qmexai/ramadandata/internal/app/models"
	"github.com/qmexai/ramadandata/internal/app/models/dto"
	"github.com/qmexai/ramadandata/internal/app/services"
	"github.com/qmexai/ramadandata/internal/middleware"
	"github.com/qmexai/ramadandata/internal/pkg/auth"
	"github.com/qmexai/ramadandata/internal/web"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct{}

func (stubAuth) Login(context.Context, string, string) (*services.LoginResult, error) {
	return &services.LoginResult{Token: "t"}, nil
}

type stubStudents struct{}

func (stubStudents) ListStudents(context.Context, models.StudentFilter) ([]models.Student, error) {
	return []models.Student{}, nil
}

func (stubStudents) GetStats(context.Context, models.StudentFilter) (*models.StudentStats, error) {
	return &models.StudentStats{}, nil
}

func (stubStudents) CreateStudent(_ context.Context, s *models.Student, _ int64) (*models.Student, error) {
	return s, nil
}

func (stubStudents) UpdateStudent(_ context.Context, s *models.Student) (*models.Student, error) {
	return s, nil
}

func (stubStudents) DeleteStudent(context.Context, int64) error { return nil }

type stubUsers struct{}

func (stubUsers) ListUsers(context.Context) ([]models.User, error) { return []models.User{}, nil }

func (stubUsers) CreateUser(_ context.Context, in services.NewUser) (*models.User, error) {
	return &models.User{ID: 9, Username: in.Username, Role: models.RoleAdmin}, nil
}

func (stubUsers) ResetPassword(context.Context, string, string) error { return nil }

func (stubUsers) CountUsers(context.Context) (int64, error) { return 1, nil }

func newTestRouter(t *testing.T) (*gin.Engine, *auth.SessionCodec) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, dto.RegisterValidators())

	codec, err := auth.NewSessionCodec(auth.SessionConfig{SecretKey: "routes-secret", TTL: 24 * time.Hour})
	require.NoError(t, err)
	templates, err := web.Templates()
	require.NoError(t, err)

	lgr := zerolog.Nop()
	cookies := middleware.CookieOptions{}
	branding := controllers.Branding{AppName: "Ramadan Data Collection", Brand: "qmexai", Year: 2026}

	router := gin.New()
	router.SetHTMLTemplate(templates)
	SetupRouter(router,
		controllers.NewAuthController(stubAuth{}, codec.TTL(), cookies, lgr),
		controllers.NewStudentController(stubStudents{}, controllers.ReportSettings{Title: branding.AppName, Brand: branding.Brand, Year: branding.Year}, lgr),
		controllers.NewUserController(stubUsers{}, lgr),
		controllers.NewPageController(branding),
		middleware.NewAuthMiddleware(codec, cookies, lgr),
	)
	return router, codec
}

func token(t *testing.T, codec *auth.SessionCodec, role models.Role) string {
	t.Helper()
	tok, err := codec.Encrypt(auth.SessionPayload{ID: 1, Role: role, Name: "Muhsin"})
	require.NoError(t, err)
	return tok
}

func do(r http.Handler, method, path, tok string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if tok != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: tok})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnonymousAccess(t *testing.T) {
	r, _ := newTestRouter(t)

	tests := []struct {
		method   string
		path     string
		status   int
		location string
	}{
		{http.MethodGet, "/", http.StatusFound, "/login"},
		{http.MethodGet, "/admin/users", http.StatusFound, "/login"},
		{http.MethodGet, "/login", http.StatusOK, ""},
		{http.MethodGet, "/health", http.StatusOK, ""},
		{http.MethodGet, "/static/app.css", http.StatusOK, ""},
		{http.MethodGet, "/api", http.StatusUnauthorized, ""},
		{http.MethodGet, "/api/stats", http.StatusUnauthorized, ""},
		{http.MethodGet, "/api/auth/me", http.StatusUnauthorized, ""},
		{http.MethodGet, "/api/users", http.StatusForbidden, ""},
		{http.MethodPost, "/api/auth/logout", http.StatusOK, ""},
	}

	for _, tt := range tests {
		w := do(r, tt.method, tt.path, "")
		assert.Equal(t, tt.status, w.Code, tt.path)
		if tt.location != "" {
			assert.Equal(t, tt.location, w.Header().Get("Location"), tt.path)
		}
	}
}

func TestAdminSession(t *testing.T) {
	r, codec := newTestRouter(t)
	tok := token(t, codec, models.RoleAdmin)

	w := do(r, http.MethodGet, "/", tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Muhsin")
	assert.NotContains(t, w.Body.String(), `href="/admin/users"`)

	w = do(r, http.MethodGet, "/login", tok)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api", tok).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/stats", tok).Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/api/users", tok).Code)

	w = do(r, http.MethodGet, "/admin/users", tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Only superusers can manage admin accounts.")
}

func TestSuperuserSession(t *testing.T) {
	r, codec := newTestRouter(t)
	tok := token(t, codec, models.RoleSuperuser)

	w := do(r, http.MethodGet, "/", tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `href="/admin/users"`)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/api/users", tok).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/admin/users", tok).Code)
}

func TestTamperedCookieIsAnonymous(t *testing.T) {
	r, codec := newTestRouter(t)
	tok := token(t, codec, models.RoleSuperuser) + "x"

	w := do(r, http.MethodGet, "/", tok)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api", tok).Code)
}
