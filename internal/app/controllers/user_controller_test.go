package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/qmexai/ramadandata/internal/app/models"
	"github.com/qmexai/ramadandata/internal/app/models/dto"
	"github.com/qmexai/ramadandata/internal/pkg/apperrors"
	"github.com/qmexai/ramadandata/internal/pkg/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRouter(svc *fakeUserService) *gin.Engine {
	c := NewUserController(svc, zerolog.Nop())
	r := gin.New()
	r.Use(withSession(&auth.SessionPayload{ID: 1, Role: models.RoleSuperuser, Name: "Muhsin"}))
	r.GET("/api/users", c.ListUsers)
	r.POST("/api/users", c.CreateUser)
	return r
}

func TestListUsersOmitsPasswords(t *testing.T) {
	svc := &fakeUserService{users: []models.User{
		{ID: 2, Name: "Sara", Username: "sara", PhoneNumber: "9876500000", Password: "$2a$10$hash", Role: models.RoleAdmin},
		{ID: 1, Name: "Muhsin", Username: "dpt", PhoneNumber: "9876543210", Password: "$2a$10$hash", Role: models.RoleSuperuser},
	}}
	w := performRequest(userRouter(svc), http.MethodGet, "/api/users", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "$2a$")

	var got []models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "sara", got[0].Username)
}

func TestCreateUser(t *testing.T) {
	svc := &fakeUserService{}
	body := `{"name":"Sara","username":"sara","password":"secret1","phone_number":"9876500000"}`
	w := performRequest(userRouter(svc), http.MethodPost, "/api/users", body)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":2,"name":"Sara","username":"sara","role":"admin"}`, w.Body.String())
	assert.Equal(t, "secret1", svc.created.Password)
	assert.Equal(t, models.Role(""), svc.created.Role)
}

func TestCreateUserWithRole(t *testing.T) {
	svc := &fakeUserService{}
	body := `{"name":"Sara","username":"sara","password":"secret1","phone_number":"9876500000","role":"superuser"}`
	w := performRequest(userRouter(svc), http.MethodPost, "/api/users", body)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.RoleSuperuser, svc.created.Role)
}

func TestCreateUserRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "missing phone", body: `{"name":"Sara","username":"sara","password":"secret1"}`, field: "phone_number"},
		{name: "unknown role", body: `{"name":"Sara","username":"sara","password":"secret1","phone_number":"9876500000","role":"owner"}`, field: "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeUserService{}
			w := performRequest(userRouter(svc), http.MethodPost, "/api/users", tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var got dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.field, got.Field)
			assert.Empty(t, svc.created.Username)
		})
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	svc := &fakeUserService{err: apperrors.ErrUserAlreadyExists}
	body := `{"name":"Sara","username":"dpt","password":"secret1","phone_number":"9876500000"}`
	w := performRequest(userRouter(svc), http.MethodPost, "/api/users", body)

	require.Equal(t, http.StatusConflict, w.Code)
	var got dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Username or phone number already exists", got.Error)
}
