package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/qmexai/ramadandata/internal/app/models/dto"
	"github.com/qmexai/ramadandata/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// SessionContextKey is the gin context key holding the *auth.SessionPayload.
const SessionContextKey = "session"

// Page gate routing tables.
var (
	ProtectedPrefixes = []string{"/admin", "/dashboard"}
	PublicPrefixes    = []string{"/login", "/api/auth/login"}
)

const (
	loginPath    = "/login"
	homePath     = "/"
	loginAPIPath = "/api/auth/login"
)

// AuthMiddleware for session authentication and authorization
type AuthMiddleware struct {
	codec   *auth.SessionCodec
	cookies CookieOptions
	logger  zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(codec *auth.SessionCodec, cookies CookieOptions, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		codec:   codec,
		cookies: cookies,
		logger:  logger,
	}
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// sessionFromCookie decodes the session cookie; nil means no usable session.
func (m *AuthMiddleware) sessionFromCookie(c *gin.Context) (string, *auth.SessionPayload) {
	token, err := c.Cookie(auth.SessionCookieName)
	if err != nil || token == "" {
		return "", nil
	}
	return token, m.codec.Decrypt(token)
}

// PageGate redirects page requests by session state. The root path and the
// protected prefixes require a session; signed-in users are sent home from
// the public pages, except for the login API itself.
func (m *AuthMiddleware) PageGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		token, session := m.sessionFromCookie(c)

		if session == nil && (path == homePath || hasAnyPrefix(path, ProtectedPrefixes)) {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		if session != nil && path != loginAPIPath && hasAnyPrefix(path, PublicPrefixes) {
			c.Redirect(http.StatusFound, homePath)
			c.Abort()
			return
		}

		if session != nil {
			m.refresh(c, token)
			c.Set(SessionContextKey, session)
		}

		c.Next()
	}
}

// refresh re-issues a session cookie that is close to expiry. Failures are
// logged and otherwise ignored.
func (m *AuthMiddleware) refresh(c *gin.Context, token string) {
	fresh, refreshed, err := m.codec.Refresh(token)
	if err != nil {
		m.logger.Warn().Err(err).Msg("Session refresh failed")
		return
	}
	if refreshed {
		SetSessionCookie(c, fresh, m.codec.TTL(), m.cookies)
		m.logger.Debug().Str("path", c.Request.URL.Path).Msg("Session cookie refreshed")
	}
}

// RequireSession rejects API requests without a valid session cookie.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, session := m.sessionFromCookie(c)
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Unauthorized"))
			return
		}

		c.Set(SessionContextKey, session)
		c.Next()
	}
}

// RequireSuperuser answers 403 both for a missing session and for a
// non-superuser session.
func (m *AuthMiddleware) RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, session := m.sessionFromCookie(c)
		if !session.IsSuperuser() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(dto.ErrorCodeForbidden, "Unauthorized"))
			return
		}

		c.Set(SessionContextKey, session)
		c.Next()
	}
}

// GetSession returns the session stored by the auth middleware, or nil.
func GetSession(c *gin.Context) *auth.SessionPayload {
	value, exists := c.Get(SessionContextKey)
	if !exists {
		return nil
	}
	session, _ := value.(*auth.SessionPayload)
	return session
}
