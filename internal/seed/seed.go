package seed

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/qmexai/ramadandata/internal/app/services"
	"github.com/rs/zerolog"
)

// oneTimePasswordBytes is the entropy of a generated bootstrap password.
const oneTimePasswordBytes = 18

// UserCounter reports how many admin accounts exist.
type UserCounter interface {
	CountUsers(ctx context.Context) (int64, error)
}

// randRead is swapped in tests.
var randRead = rand.Read

// EnsureBootstrap resolves the credential pair that may create the first
// superuser. Once any account exists the returned pair is the configured one
// unchanged; the auth service refuses it anyway on a non-empty table.
//
// With an empty table and no configured password a random one-time password
// is generated and logged once. It lives only in this process.
func EnsureBootstrap(ctx context.Context, users UserCounter, account services.BootstrapAccount, lgr zerolog.Logger) (services.BootstrapAccount, error) {
	count, err := users.CountUsers(ctx)
	if err != nil {
		return account, fmt.Errorf("error counting users: %w", err)
	}
	if count > 0 {
		lgr.Debug().Int64("users", count).Msg("Accounts present, bootstrap login disabled")
		return account, nil
	}

	if account.Password != "" {
		lgr.Warn().Str("username", account.Username).
			Msg("No accounts yet; the first login with the configured bootstrap credentials creates the superuser")
		return account, nil
	}

	password, err := generatePassword()
	if err != nil {
		return account, fmt.Errorf("error generating bootstrap password: %w", err)
	}
	account.Password = password

	lgr.Warn().
		Str("username", account.Username).
		Str("password", password).
		Msg("No accounts yet; sign in once with this one-time password to create the superuser, or run `admin createsuperuser`")
	return account, nil
}

func generatePassword() (string, error) {
	buf := make([]byte, oneTimePasswordBytes)
	if _, err := randRead(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
