package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/qmexai/ramadandata/internal/app/models"
	"github.com/qmexai/ramadandata/internal/app/services"
	"github.com/qmexai/ramadandata/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserService struct {
	created  []services.NewUser
	resets   map[string]string
	createFn func(services.NewUser) error
}

func (f *fakeUserService) ListUsers(context.Context) ([]models.User, error) { return nil, nil }

func (f *fakeUserService) CountUsers(context.Context) (int64, error) {
	return int64(len(f.created)), nil
}

func (f *fakeUserService) CreateUser(_ context.Context, input services.NewUser) (*models.User, error) {
	if f.createFn != nil {
		if err := f.createFn(input); err != nil {
			return nil, err
		}
	}
	f.created = append(f.created, input)
	return &models.User{ID: int64(len(f.created)), Username: input.Username, Role: input.Role}, nil
}

func (f *fakeUserService) ResetPassword(_ context.Context, username, password string) error {
	if username != "dpt" {
		return apperrors.ErrUserNotFound
	}
	if f.resets == nil {
		f.resets = map[string]string{}
	}
	f.resets[username] = password
	return nil
}

// stubPasswords answers successive prompts with answers.
func stubPasswords(t *testing.T, answers ...string) {
	t.Helper()
	original := readPasswordFunc
	i := 0
	readPasswordFunc = func(int) ([]byte, error) {
		if i >= len(answers) {
			return nil, errors.New("unexpected prompt")
		}
		answer := answers[i]
		i++
		return []byte(answer), nil
	}
	t.Cleanup(func() { readPasswordFunc = original })
}

func setup(users *fakeUserService, migrated *bool) (*commandLine, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cl := &commandLine{
		users: users,
		migrate: func(context.Context) error {
			*migrated = true
			return nil
		},
		out: out,
	}
	return cl, out
}

func Test_commandLine_createsuperuser(t *testing.T) {
	users := &fakeUserService{}
	var migrated bool
	cl, out := setup(users, &migrated)
	stubPasswords(t, "s3cret!", "s3cret!")

	err := cl.run(context.Background(), []string{"admin", "createsuperuser", "--username", "dpt", "--name", "Muhsin", "--phone", "9876543210"})
	require.NoError(t, err)

	require.Len(t, users.created, 1)
	assert.Equal(t, services.NewUser{
		Name:        "Muhsin",
		Username:    "dpt",
		Password:    "s3cret!",
		PhoneNumber: "9876543210",
		Role:        models.RoleSuperuser,
	}, users.created[0])
	assert.Contains(t, out.String(), `Superuser "dpt" created`)
	assert.NotContains(t, out.String(), "s3cret!")
}

func Test_commandLine_createsuperuser_errors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		passwords []string
		createErr error
		wantErr   error
	}{
		{
			name:      "empty password",
			args:      []string{"createsuperuser", "--username", "dpt", "--name", "Muhsin", "--phone", "9876543210"},
			passwords: []string{""},
			wantErr:   errEmptyPassword,
		},
		{
			name:      "short password",
			args:      []string{"createsuperuser", "--username", "dpt", "--name", "Muhsin", "--phone", "9876543210"},
			passwords: []string{"pw"},
			wantErr:   errPasswordTooShort,
		},
		{
			name:      "mismatched confirmation",
			args:      []string{"createsuperuser", "--username", "dpt", "--name", "Muhsin", "--phone", "9876543210"},
			passwords: []string{"s3cret!", "other"},
			wantErr:   errPasswordMismatch,
		},
		{
			name:      "duplicate account",
			args:      []string{"createsuperuser", "--username", "dpt", "--name", "Muhsin", "--phone", "9876543210"},
			passwords: []string{"s3cret!", "s3cret!"},
			createErr: apperrors.ErrUserAlreadyExists,
			wantErr:   apperrors.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &fakeUserService{createFn: func(services.NewUser) error { return tt.createErr }}
			var migrated bool
			cl, _ := setup(users, &migrated)
			stubPasswords(t, tt.passwords...)

			err := cl.run(context.Background(), append([]string{"admin"}, tt.args...))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, users.created)
		})
	}
}

func Test_commandLine_createsuperuser_requiresFlags(t *testing.T) {
	users := &fakeUserService{}
	var migrated bool
	cl, _ := setup(users, &migrated)
	stubPasswords(t)

	err := cl.run(context.Background(), []string{"admin", "createsuperuser", "--username", "dpt"})
	assert.Error(t, err)
	assert.Empty(t, users.created)
}

func Test_commandLine_resetpassword(t *testing.T) {
	users := &fakeUserService{}
	var migrated bool
	cl, out := setup(users, &migrated)
	stubPasswords(t, "n3w-pass", "n3w-pass")

	err := cl.run(context.Background(), []string{"admin", "resetpassword", "--username", "dpt"})
	require.NoError(t, err)
	assert.Equal(t, "n3w-pass", users.resets["dpt"])
	assert.Contains(t, out.String(), `Password of "dpt" updated`)
}

func Test_commandLine_resetpassword_unknownUser(t *testing.T) {
	users := &fakeUserService{}
	var migrated bool
	cl, _ := setup(users, &migrated)
	stubPasswords(t, "n3w-pass", "n3w-pass")

	err := cl.run(context.Background(), []string{"admin", "resetpassword", "--username", "ghost"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func Test_commandLine_resetpassword_shortPassword(t *testing.T) {
	users := &fakeUserService{}
	var migrated bool
	cl, _ := setup(users, &migrated)
	stubPasswords(t, "12345")

	err := cl.run(context.Background(), []string{"admin", "resetpassword", "--username", "dpt"})
	assert.ErrorIs(t, err, errPasswordTooShort)
	assert.Empty(t, users.resets)
}

func Test_commandLine_migrate(t *testing.T) {
	users := &fakeUserService{}
	var migrated bool
	cl, _ := setup(users, &migrated)

	require.NoError(t, cl.run(context.Background(), []string{"admin", "migrate"}))
	assert.True(t, migrated)
}
