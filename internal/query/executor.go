// Package query wraps the database handle behind a single prepared-statement
// entry point. Every route in the application goes through Executor.Execute:
// SELECT statements materialize into an ordered RowSet, anything else returns
// an execution Outcome. Database-level failures surface as *QueryError and
// are not recovered below the top-level error handler.
package query

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Row maps column names to scanned values for one result row.
type Row map[string]any

// RowSet is an ordered sequence of rows as returned by the database engine.
// No ordering is guaranteed beyond an explicit ORDER BY in the statement.
type RowSet []Row

// Outcome reports the effect of a non-SELECT statement.
type Outcome struct {
	RowsAffected int64
	LastInsertID int64
}

// Result is either a row set (SELECT) or an execution outcome (everything
// else). Exactly one of Rows/Outcome is meaningful, discriminated by Select.
type Result struct {
	Select  bool
	Rows    RowSet
	Outcome *Outcome
}

// QueryError wraps any database-level failure (connection loss, constraint
// violation, syntax error) together with the statement that caused it.
// Handlers propagate it unchanged; the HTTP error handler logs it and
// renders the generic failure page.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed: %v (stmt: %s)", e.Err, firstLine(e.Query))
}

func (e *QueryError) Unwrap() error { return e.Err }

// Executor prepares, binds and runs statements against a shared *sql.DB.
type Executor struct {
	DB *sql.DB
}

func NewExecutor(db *sql.DB) *Executor { return &Executor{DB: db} }

// Execute runs q with the given positional parameters. The caller must never
// concatenate user input into q; values go through params only.
func (e *Executor) Execute(ctx context.Context, q string, params ...any) (Result, error) {
	stmt, err := e.DB.PrepareContext(ctx, q)
	if err != nil {
		return Result{}, &QueryError{Query: q, Err: err}
	}
	defer stmt.Close()

	if isSelect(q) {
		rows, err := stmt.QueryContext(ctx, params...)
		if err != nil {
			return Result{}, &QueryError{Query: q, Err: err}
		}
		defer rows.Close()
		set, err := materialize(rows)
		if err != nil {
			return Result{}, &QueryError{Query: q, Err: err}
		}
		return Result{Select: true, Rows: set}, nil
	}

	res, err := stmt.ExecContext(ctx, params...)
	if err != nil {
		return Result{}, &QueryError{Query: q, Err: err}
	}
	out := &Outcome{}
	// MySQL supports both; ignore errors so drivers without support
	// still produce a usable outcome.
	out.RowsAffected, _ = res.RowsAffected()
	out.LastInsertID, _ = res.LastInsertId()
	return Result{Outcome: out}, nil
}

// isSelect reports whether the statement's first keyword is SELECT,
// case-insensitively and ignoring leading whitespace.
func isSelect(q string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(q)), "SELECT")
}

// materialize drains rows into memory, converting []byte cells to string so
// MySQL text columns print cleanly in templates.
func materialize(rows *sql.Rows) (RowSet, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	var set RowSet
	for rows.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		r := make(Row, len(cols))
		for i, c := range cols {
			r[c] = convertValue(raw[i])
		}
		set = append(set, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

func convertValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

func firstLine(q string) string {
	q = strings.TrimSpace(q)
	if i := strings.IndexByte(q, '\n'); i >= 0 {
		q = q[:i]
	}
	return q
}
