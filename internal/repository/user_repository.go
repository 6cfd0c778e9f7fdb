package repository

import (
	"context"
	"strings"

	"github.com/iliyamo/movie-portal/internal/model"
	"github.com/iliyamo/movie-portal/internal/query"
	"github.com/iliyamo/movie-portal/internal/utils"
)

// UserRepo reads and writes the Users table through the query executor.
type UserRepo struct {
	Exec *query.Executor
}

func NewUserRepo(e *query.Executor) *UserRepo { return &UserRepo{Exec: e} }

// Credentials fetches the stored password hash and identifier for a
// username. Exactly one matching row is required; anything else yields
// ErrNoSuchUser so the login flow cannot distinguish an unknown name from a
// wrong password.
func (r *UserRepo) Credentials(ctx context.Context, username string) (model.Credentials, error) {
	res, err := r.Exec.Execute(ctx,
		"SELECT password, unum FROM Users WHERE u_name = ?", username)
	if err != nil {
		return model.Credentials{}, err
	}
	if len(res.Rows) != 1 {
		return model.Credentials{}, ErrNoSuchUser
	}
	return model.Credentials{
		PasswordHash: query.String(res.Rows[0], "password"),
		Unum:         query.Int64(res.Rows[0], "unum"),
	}, nil
}

// Exists reports whether a username is already taken.
func (r *UserRepo) Exists(ctx context.Context, username string) (bool, error) {
	res, err := r.Exec.Execute(ctx,
		"SELECT unum FROM Users WHERE u_name = ?", username)
	if err != nil {
		return false, err
	}
	return len(res.Rows) > 0, nil
}

// Create hashes the password and inserts a new user, returning the new
// unum. A duplicate-key race between the Exists check and the INSERT is
// mapped to ErrUsernameExists via the MySQL 1062 error code.
func (r *UserRepo) Create(ctx context.Context, u model.User, password string, cost int) (int64, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.Exec.Execute(ctx,
		"INSERT INTO Users (u_name, password, cname, email) VALUES (?, ?, ?, ?)",
		u.Username, hash, u.Name, u.Email)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	return res.Outcome.LastInsertID, nil
}
