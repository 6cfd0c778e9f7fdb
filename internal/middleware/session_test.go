package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-portal/internal/session"
)

func serveWithSession(store session.Store, cookie *http.Cookie) (session.Data, string) {
	e := echo.New()
	e.Use(Session(store))

	var d session.Data
	var tok string
	e.GET("/", func(c echo.Context) error {
		d = SessionData(c)
		tok = SessionToken(c)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	e.ServeHTTP(httptest.NewRecorder(), req)
	return d, tok
}

func TestSessionMiddlewareLoadsData(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "tok123",
		session.Data{IsUser: true, User: "alice", Unum: 7}))

	d, tok := serveWithSession(store, &http.Cookie{Name: session.CookieName, Value: "tok123"})

	assert.Equal(t, "tok123", tok)
	assert.True(t, d.IsUser)
	assert.Equal(t, "alice", d.User)
	assert.Equal(t, int64(7), d.Unum)
}

func TestSessionMiddlewareAnonymous(t *testing.T) {
	store := session.NewMemoryStore()

	// No cookie.
	d, tok := serveWithSession(store, nil)
	assert.Equal(t, session.Data{}, d)
	assert.Equal(t, "", tok)

	// Cookie for an unknown token: the token is kept (logout needs it) but
	// the session stays anonymous.
	d, tok = serveWithSession(store, &http.Cookie{Name: session.CookieName, Value: "gone"})
	assert.Equal(t, session.Data{}, d)
	assert.Equal(t, "gone", tok)
}
