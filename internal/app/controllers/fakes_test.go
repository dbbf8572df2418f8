package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/qmexai/ramadandata/internal/app/models"
	"github.com/qmexai/ramadandata/internal/app/models/dto"
	"github.com/qmexai/ramadandata/internal/app/services"
	"github.com/qmexai/ramadandata/internal/middleware"
	"github.com/qmexai/ramadandata/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := dto.RegisterValidators(); err != nil {
		panic(err)
	}
}

type fakeAuthService struct {
	result   *services.LoginResult
	err      error
	username string
	password string
}

func (f *fakeAuthService) Login(_ context.Context, username, password string) (*services.LoginResult, error) {
	f.username, f.password = username, password
	return f.result, f.err
}

type fakeStudentService struct {
	students   []models.Student
	stats      *models.StudentStats
	err        error
	lastFilter models.StudentFilter
	created    *models.Student
	createdBy  int64
	updated    *models.Student
	deletedID  int64
}

func (f *fakeStudentService) ListStudents(_ context.Context, filter models.StudentFilter) ([]models.Student, error) {
	f.lastFilter = filter
	return f.students, f.err
}

func (f *fakeStudentService) GetStats(_ context.Context, filter models.StudentFilter) (*models.StudentStats, error) {
	f.lastFilter = filter
	return f.stats, f.err
}

func (f *fakeStudentService) CreateStudent(_ context.Context, student *models.Student, createdBy int64) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	student.ID = 7
	f.created, f.createdBy = student, createdBy
	return student, nil
}

func (f *fakeStudentService) UpdateStudent(_ context.Context, student *models.Student) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.updated = student
	return student, nil
}

func (f *fakeStudentService) DeleteStudent(_ context.Context, id int64) error {
	f.deletedID = id
	return f.err
}

type fakeUserService struct {
	users   []models.User
	err     error
	created services.NewUser
}

func (f *fakeUserService) ListUsers(context.Context) ([]models.User, error) {
	return f.users, f.err
}

func (f *fakeUserService) CreateUser(_ context.Context, input services.NewUser) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = input
	role := input.Role
	if role == "" {
		role = models.RoleAdmin
	}
	return &models.User{ID: 2, Name: input.Name, Username: input.Username, Role: role}, nil
}

func (f *fakeUserService) ResetPassword(context.Context, string, string) error { return f.err }

func (f *fakeUserService) CountUsers(context.Context) (int64, error) {
	return int64(len(f.users)), f.err
}

// withSession stands in for the auth middleware.
func withSession(session *auth.SessionPayload) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session != nil {
			c.Set(middleware.SessionContextKey, session)
		}
		c.Next()
	}
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
