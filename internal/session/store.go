// Package session implements the server-side session store. The browser
// holds only an opaque token in a cookie; the token addresses a small record
// of three fields on the server. Two backends exist: Redis for normal
// operation and an in-memory map used in tests and when Redis is down.
package session

import (
	"context"

	"github.com/iliyamo/movie-portal/internal/utils"
)

// CookieName is the cookie that carries the opaque session token.
const CookieName = "movie_session"

// Data holds the session fields. IsUser is true iff a successful login set
// User and Unum and no logout has since cleared them.
type Data struct {
	IsUser bool
	User   string
	Unum   int64
}

// Store is the contract every session backend satisfies. Get reports
// (zero, false, nil) for unknown tokens. Clear removes all fields at once;
// clearing an unknown token is a no-op. Concurrent requests from the same
// browser are not serialized; last write wins.
type Store interface {
	Get(ctx context.Context, token string) (Data, bool, error)
	Set(ctx context.Context, token string, d Data) error
	Clear(ctx context.Context, token string) error
}

// NewToken mints an opaque session token: 32 random bytes, hex encoded.
func NewToken() (string, error) {
	return utils.RandomHex(32)
}
