package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-portal/internal/middleware"
	"github.com/iliyamo/movie-portal/internal/query"
)

// HTTPErrorHandler is the top-level error handler. Database failures and
// anything else a handler propagates end up here: the error is logged with
// detail and the client sees only a generic failure page. There is no retry;
// a failed request requires a new user action.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "Something went wrong - please try again"

	var qe *query.QueryError
	var he *echo.HTTPError
	switch {
	case errors.As(err, &qe):
		c.Logger().Errorf("database error: %v", qe)
	case errors.As(err, &he):
		code = he.Code
		if code == http.StatusNotFound {
			msg = "Page not found"
		} else if code == http.StatusMethodNotAllowed {
			msg = "Method not allowed"
		}
	default:
		c.Logger().Error(err)
	}

	data := map[string]any{
		"pageTitle": "Error",
		"message":   msg,
		"user":      middleware.SessionData(c).User,
	}
	if rerr := c.Render(code, "error.html", data); rerr != nil {
		c.Logger().Errorf("error page render failed: %v", rerr)
		_ = c.String(code, msg)
	}
}
