package model

// User represents an application user record as stored in the `Users`
// table. The column names follow the legacy coursework schema rather than
// snake_case conventions. Registration fills Username, Name and Email; the
// repository hashes the password and assigns Unum from the INSERT.
//
// The catalog tables (MOVIE, DIRECTOR, ACTOR, ACTED_IN, THEATER) are
// read-only projections rendered straight from query.RowSet values, so they
// have no structs here; schema.sql is their authoritative description.
//
// Fields:
//
//	Unum         – primary key identifier (Users.unum).
//	Username     – unique login name (Users.u_name).
//	PasswordHash – bcrypt hashed password (Users.password).
//	Name         – display name (Users.cname).
//	Email        – contact address (Users.email).
type User struct {
	Unum         int64
	Username     string
	PasswordHash string
	Name         string
	Email        string
}

// Credentials is the slice of a user row the login flow needs: the stored
// hash to verify against and the identifier to place in the session.
type Credentials struct {
	PasswordHash string
	Unum         int64
}
