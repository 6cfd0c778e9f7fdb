package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-portal/internal/config"
	"github.com/iliyamo/movie-portal/internal/form"
	"github.com/iliyamo/movie-portal/internal/middleware"
	"github.com/iliyamo/movie-portal/internal/model"
	"github.com/iliyamo/movie-portal/internal/queue"
	"github.com/iliyamo/movie-portal/internal/repository"
	"github.com/iliyamo/movie-portal/internal/session"
	"github.com/iliyamo/movie-portal/internal/utils"
)

// The generic login failure message. Both "unknown username" and "wrong
// password" produce exactly this text so the response does not reveal which
// of the two failed.
const invalidCredentialsMsg = "Invalid User Name or Password - Try again"

const usernameTakenMsg = "Username already exists - Try again"

// dbTimeout bounds every database call made from a handler.
const dbTimeout = 5 * time.Second

// UserStore is the slice of the user repository the auth handlers need.
type UserStore interface {
	Credentials(ctx context.Context, username string) (model.Credentials, error)
	Exists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, u model.User, password string, cost int) (int64, error)
}

// EventPublisher emits domain events. May be left nil to disable publishing.
type EventPublisher interface {
	PublishUserRegistered(ctx context.Context, ev queue.UserRegisteredEvent) error
}

// AuthHandler bundles dependencies for the login, registration and logout
// pages.
type AuthHandler struct {
	Cfg      config.Config
	Users    UserStore
	Sessions session.Store
	Events   EventPublisher
}

func NewAuthHandler(cfg config.Config, u UserStore, s session.Store, ev EventPublisher) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Sessions: s, Events: ev}
}

// Login renders the form on GET and authenticates on POST. A successful
// login mints a fresh session token (never reuses the old one), stores the
// three session fields, and redirects home.
func (h *AuthHandler) Login(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		return c.Render(http.StatusOK, "login.html", h.loginPage(c, form.LoginForm{}, nil, ""))
	}

	f := form.BindLogin(c)
	if errs := f.Validate(); len(errs) > 0 {
		return c.Render(http.StatusOK, "login.html", h.loginPage(c, f, errs, ""))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	creds, err := h.Users.Credentials(ctx, f.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNoSuchUser) {
			return c.Render(http.StatusOK, "login.html", h.loginPage(c, f, nil, invalidCredentialsMsg))
		}
		return err
	}
	if !utils.VerifyPassword(creds.PasswordHash, f.Password) {
		return c.Render(http.StatusOK, "login.html", h.loginPage(c, f, nil, invalidCredentialsMsg))
	}

	token, err := session.NewToken()
	if err != nil {
		return err
	}
	if err := h.Sessions.Set(ctx, token, session.Data{
		IsUser: true,
		User:   f.Username,
		Unum:   creds.Unum,
	}); err != nil {
		return err
	}
	setSessionCookie(c, token)
	return c.Redirect(http.StatusSeeOther, "/")
}

// Register renders the form on GET and creates a user on POST. A collision
// with an existing username re-renders the form; success redirects home
// without logging the new user in.
func (h *AuthHandler) Register(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		return c.Render(http.StatusOK, "register.html", h.registerPage(c, form.RegisterForm{}, nil, ""))
	}

	f := form.BindRegister(c)
	if errs := f.Validate(); len(errs) > 0 {
		return c.Render(http.StatusOK, "register.html", h.registerPage(c, f, errs, ""))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	taken, err := h.Users.Exists(ctx, f.Username)
	if err != nil {
		return err
	}
	if taken {
		return c.Render(http.StatusOK, "register.html", h.registerPage(c, f, nil, usernameTakenMsg))
	}

	unum, err := h.Users.Create(ctx, model.User{
		Username: f.Username,
		Name:     f.Name,
		Email:    f.Email,
	}, f.Password, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			// Lost the race between the Exists check and the INSERT.
			return c.Render(http.StatusOK, "register.html", h.registerPage(c, f, nil, usernameTakenMsg))
		}
		return err
	}

	if h.Events != nil {
		// Best effort; the publisher logs its own failures.
		_ = h.Events.PublishUserRegistered(ctx, queue.UserRegisteredEvent{
			UserID:       unum,
			Username:     f.Username,
			Email:        f.Email,
			RegisteredAt: time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the session and redirects home. It is idempotent: a request
// without a session still gets the redirect.
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := middleware.SessionToken(c); token != "" {
		ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
		defer cancel()
		if err := h.Sessions.Clear(ctx, token); err != nil {
			// The cookie is expired below either way; the orphan record
			// falls to the store TTL.
			c.Logger().Warnf("session clear failed: %v", err)
		}
	}
	expireSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) loginPage(c echo.Context, f form.LoginForm, errs []form.FieldError, msg string) map[string]any {
	return map[string]any{
		"pageTitle": "Login",
		"form":      f,
		"errors":    errs,
		"message":   msg,
		"user":      middleware.SessionData(c).User,
	}
}

func (h *AuthHandler) registerPage(c echo.Context, f form.RegisterForm, errs []form.FieldError, msg string) map[string]any {
	return map[string]any{
		"pageTitle": "Register",
		"form":      f,
		"errors":    errs,
		"message":   msg,
		"user":      middleware.SessionData(c).User,
	}
}

// setSessionCookie hands the opaque token to the browser for the lifetime
// of the browser session (no Max-Age).
func setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func expireSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
