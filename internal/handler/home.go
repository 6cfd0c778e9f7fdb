package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-portal/internal/middleware"
)

// Home renders the landing page, greeting the session user when one exists.
func Home(c echo.Context) error {
	sess := middleware.SessionData(c)
	user := ""
	if sess.IsUser {
		user = sess.User
	}
	return c.Render(http.StatusOK, "home.html", map[string]any{
		"pageTitle": "Home",
		"user":      user,
	})
}
