// Package router defines how HTTP routes are registered for the site.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-portal/internal/handler"
)

// RegisterRoutes maps the fixed pages of the site. The route paths keep the
// legacy casing (/Movies, /tList, ...) because they are part of the public
// URL surface of the original site.
func RegisterRoutes(e *echo.Echo) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)
	// Home page greets the logged-in user when a session exists.
	e.GET("/", handler.Home)
}

// RegisterAuth maps the login, registration and logout pages. The limit
// middleware (a Redis token bucket) guards only the POSTs, where credential
// stuffing would land.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, limit echo.MiddlewareFunc) {
	e.GET("/login", a.Login)
	e.POST("/login", a.Login, limit)
	e.GET("/register", a.Register)
	e.POST("/register", a.Register, limit)
	e.GET("/logout", a.Logout)
}

// RegisterReports maps the six read-only report pages. None of them takes
// request parameters.
func RegisterReports(e *echo.Echo, r *handler.ReportHandler) {
	e.GET("/Movies", r.Movies)
	e.GET("/orders", r.Directors)
	e.GET("/anum", r.ActorCounts)
	e.GET("/tList", r.Theaters)
	e.GET("/actedIn", r.ActedIn)
	e.GET("/topTen", r.TopTen)
}
