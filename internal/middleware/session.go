package middleware

// session.go attaches the caller's session to the Echo context. The cookie
// only carries an opaque token; the fields live server-side in the session
// store. A store read failure is logged and the request proceeds anonymous
// rather than failing, since every page is viewable without a session.

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-portal/internal/session"
)

const (
	ctxSessionKey = "session_data"
	ctxTokenKey   = "session_token"
)

// Session returns middleware that resolves the session cookie against the
// store and stashes the result for handlers.
func Session(store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err == nil && cookie.Value != "" {
				c.Set(ctxTokenKey, cookie.Value)
				d, ok, err := store.Get(c.Request().Context(), cookie.Value)
				if err != nil {
					c.Logger().Warnf("session load failed: %v", err)
				} else if ok {
					c.Set(ctxSessionKey, d)
				}
			}
			return next(c)
		}
	}
}

// SessionData returns the caller's session fields, or the zero (anonymous)
// value when no session exists.
func SessionData(c echo.Context) session.Data {
	if d, ok := c.Get(ctxSessionKey).(session.Data); ok {
		return d
	}
	return session.Data{}
}

// SessionToken returns the token from the request cookie, or "" when the
// browser sent none.
func SessionToken(c echo.Context) string {
	if t, ok := c.Get(ctxTokenKey).(string); ok {
		return t
	}
	return ""
}
