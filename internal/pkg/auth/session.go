package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/qmexai/ramadandata/internal/app/models"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

// DefaultSessionTTL is the lifetime of a freshly minted session.
const DefaultSessionTTL = 24 * time.Hour

// ErrMissingSecret is returned when the codec is built without a signing secret.
var ErrMissingSecret = errors.New("session signing secret must not be empty")

// SessionConfig defines session token settings
type SessionConfig struct {
	SecretKey     string
	TTL           time.Duration
	RefreshWindow time.Duration
	Issuer        string
}

// SessionPayload is the identity embedded in a session token.
type SessionPayload struct {
	ID   int64       `json:"id"`
	Role models.Role `json:"role"`
	Name string      `json:"name"`
}

// IsSuperuser reports whether the session belongs to a superuser.
func (p *SessionPayload) IsSuperuser() bool {
	return p != nil && p.Role == models.RoleSuperuser
}

// SessionClaims defines JWT token content
type SessionClaims struct {
	SessionPayload
	jwt.RegisteredClaims
}

// SessionCodec signs and verifies session tokens with a symmetric key.
type SessionCodec struct {
	config SessionConfig
	now    func() time.Time
}

// NewSessionCodec creates a codec. An empty secret is rejected rather than
// replaced by a default.
func NewSessionCodec(config SessionConfig) (*SessionCodec, error) {
	if strings.TrimSpace(config.SecretKey) == "" {
		return nil, ErrMissingSecret
	}
	if config.TTL <= 0 {
		config.TTL = DefaultSessionTTL
	}
	if config.RefreshWindow < 0 || config.RefreshWindow > config.TTL {
		config.RefreshWindow = config.TTL / 2
	}
	return &SessionCodec{config: config, now: time.Now}, nil
}

// TTL returns the lifetime of minted tokens.
func (c *SessionCodec) TTL() time.Duration {
	return c.config.TTL
}

// Encrypt mints a signed token for payload, expiring after the configured TTL.
func (c *SessionCodec) Encrypt(payload SessionPayload) (string, error) {
	now := c.now()
	claims := &SessionClaims{
		SessionPayload: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.config.TTL)),
			Issuer:    c.config.Issuer,
			Subject:   fmt.Sprintf("%d", payload.ID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(c.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Decrypt verifies signature and expiry and returns the embedded payload.
// Any failure yields nil so that a missing and a bad session look the same.
func (c *SessionCodec) Decrypt(tokenString string) *SessionPayload {
	claims, err := c.parse(tokenString)
	if err != nil {
		return nil
	}
	payload := claims.SessionPayload
	return &payload
}

// NeedsRefresh reports whether the token expires within the refresh window.
func (c *SessionCodec) NeedsRefresh(tokenString string) bool {
	claims, err := c.parse(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Time.Sub(c.now()) < c.config.RefreshWindow
}

// Refresh re-mints a valid token that is close to expiry. The second return
// value is false when no new token was issued.
func (c *SessionCodec) Refresh(tokenString string) (string, bool, error) {
	claims, err := c.parse(tokenString)
	if err != nil {
		return "", false, err
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Sub(c.now()) >= c.config.RefreshWindow {
		return "", false, nil
	}
	fresh, err := c.Encrypt(claims.SessionPayload)
	if err != nil {
		return "", false, err
	}
	return fresh, true, nil
}

func (c *SessionCodec) parse(tokenString string) (*SessionClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(c.config.SecretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionPayload.ID <= 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// JWT errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)
