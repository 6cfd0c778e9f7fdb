// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// UserRegisteredEvent is published after a registration INSERT commits. It
// carries enough for downstream consumers (audit log, welcome mail) without
// querying the primary database.
type UserRegisteredEvent struct {
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	RegisteredAt string `json:"registered_at"`
}
