// Package form defines one typed struct per HTML form plus a pure validation
// function for each. Validation returns a list of field errors for the
// template to print next to the inputs; it never touches the database, so
// uniqueness and credential checks stay in the handlers.
package form

import (
	"net/mail"
	"strings"

	"github.com/labstack/echo/v4"
)

// FieldError names the offending form field and carries the message to show.
type FieldError struct {
	Field   string
	Message string
}

const minCredentialLen = 5

// LoginForm carries the /login POST fields.
type LoginForm struct {
	Username string
	Password string
}

// BindLogin extracts the login fields from the request form.
func BindLogin(c echo.Context) LoginForm {
	return LoginForm{
		Username: strings.TrimSpace(c.FormValue("uname")),
		Password: c.FormValue("password"),
	}
}

// Validate checks both fields are non-blank.
func (f LoginForm) Validate() []FieldError {
	var errs []FieldError
	if f.Username == "" {
		errs = append(errs, FieldError{"uname", "User Name must not be blank"})
	}
	if f.Password == "" {
		errs = append(errs, FieldError{"password", "Password must not be blank"})
	}
	return errs
}

// RegisterForm carries the /register POST fields.
type RegisterForm struct {
	Username string
	Password string
	Confirm  string
	Name     string
	Email    string
}

// BindRegister extracts the registration fields from the request form.
func BindRegister(c echo.Context) RegisterForm {
	return RegisterForm{
		Username: strings.TrimSpace(c.FormValue("uname")),
		Password: c.FormValue("password"),
		Confirm:  c.FormValue("confirm"),
		Name:     strings.TrimSpace(c.FormValue("cname")),
		Email:    strings.TrimSpace(c.FormValue("email")),
	}
}

// Validate enforces the registration constraints: username and password at
// least five characters, password confirmed, name non-blank, email parseable.
func (f RegisterForm) Validate() []FieldError {
	var errs []FieldError
	switch {
	case f.Username == "":
		errs = append(errs, FieldError{"uname", "User Name must not be blank"})
	case len(f.Username) < minCredentialLen:
		errs = append(errs, FieldError{"uname", "User Name must be at least 5 characters"})
	}
	switch {
	case f.Password == "":
		errs = append(errs, FieldError{"password", "Password must not be blank"})
	case len(f.Password) < minCredentialLen:
		errs = append(errs, FieldError{"password", "Password must be at least 5 characters"})
	case f.Password != f.Confirm:
		errs = append(errs, FieldError{"confirm", "Password and Verify Password must match"})
	}
	if f.Name == "" {
		errs = append(errs, FieldError{"cname", "Name must not be blank"})
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		errs = append(errs, FieldError{"email", "Email must be a valid address"})
	}
	return errs
}
