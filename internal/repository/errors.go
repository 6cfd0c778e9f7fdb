// Package repository defines error types that are reused across multiple
// repositories. These sentinel values let handlers distinguish recoverable
// failure scenarios (unknown user, username collision) from database-level
// errors, which are wrapped as *query.QueryError and left to the top-level
// error handler.
package repository

import "errors"

// ErrNoSuchUser is returned when a username lookup matches no row (or,
// defensively, more than one). Handlers render the generic invalid
// credentials message for it.
var ErrNoSuchUser = errors.New("no such user")

// ErrUsernameExists is returned when registration collides with an existing
// username. Handlers re-render the form with the collision message.
var ErrUsernameExists = errors.New("username already exists")
