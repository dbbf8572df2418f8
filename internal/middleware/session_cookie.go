package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qmexai/ramadandata/internal/pkg/auth"
)

// CookieOptions controls the attributes of the session cookie.
type CookieOptions struct {
	Secure bool
}

// SetSessionCookie writes the session token as an HttpOnly, SameSite=Strict
// cookie scoped to the whole site.
func SetSessionCookie(c *gin.Context, token string, ttl time.Duration, opts CookieOptions) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.SessionCookieName, token, int(ttl.Seconds()), "/", "", opts.Secure, true)
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c *gin.Context, opts CookieOptions) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", opts.Secure, true)
}
