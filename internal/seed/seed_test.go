package seed

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/qmexai/ramadandata/internal/app/services"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCounter struct {
	count int64
	err   error
}

func (s stubCounter) CountUsers(context.Context) (int64, error) {
	return s.count, s.err
}

func configured(password string) services.BootstrapAccount {
	return services.BootstrapAccount{Username: "dpt", Password: password, Name: "Muhsin", PhoneNumber: "9876543210"}
}

func TestEnsureBootstrap_GeneratesOneTimePassword(t *testing.T) {
	var logs bytes.Buffer
	account, err := EnsureBootstrap(context.Background(), stubCounter{}, configured(""), zerolog.New(&logs))
	require.NoError(t, err)

	// 18 random bytes encode to 24 unpadded base64url characters.
	assert.Len(t, account.Password, 24)
	assert.Equal(t, "dpt", account.Username)
	assert.Contains(t, logs.String(), account.Password)
	assert.Contains(t, logs.String(), `"level":"warn"`)
}

func TestEnsureBootstrap_PasswordsDiffer(t *testing.T) {
	first, err := EnsureBootstrap(context.Background(), stubCounter{}, configured(""), zerolog.Nop())
	require.NoError(t, err)
	second, err := EnsureBootstrap(context.Background(), stubCounter{}, configured(""), zerolog.Nop())
	require.NoError(t, err)

	assert.NotEqual(t, first.Password, second.Password)
}

func TestEnsureBootstrap_KeepsConfiguredPassword(t *testing.T) {
	var logs bytes.Buffer
	account, err := EnsureBootstrap(context.Background(), stubCounter{}, configured("configured-secret"), zerolog.New(&logs))
	require.NoError(t, err)

	assert.Equal(t, "configured-secret", account.Password)
	assert.NotContains(t, logs.String(), "configured-secret")
}

func TestEnsureBootstrap_ExistingAccounts(t *testing.T) {
	account, err := EnsureBootstrap(context.Background(), stubCounter{count: 3}, configured(""), zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, account.Password)
}

func TestEnsureBootstrap_CountError(t *testing.T) {
	_, err := EnsureBootstrap(context.Background(), stubCounter{err: errors.New("db down")}, configured(""), zerolog.Nop())
	assert.ErrorContains(t, err, "db down")
}

func TestEnsureBootstrap_RandomFailure(t *testing.T) {
	original := randRead
	randRead = func([]byte) (int, error) { return 0, errors.New("no entropy") }
	t.Cleanup(func() { randRead = original })

	_, err := EnsureBootstrap(context.Background(), stubCounter{}, configured(""), zerolog.Nop())
	assert.ErrorContains(t, err, "no entropy")
}
