// Package querytest registers a scriptable database/sql driver so executor
// and repository tests can exercise real prepare/scan round trips without a
// MySQL server. A Script maps statement text to a canned Reply; anything a
// test did not script fails loudly at prepare time.
package querytest

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"
	"sync/atomic"
)

// Reply is the canned outcome for one scripted statement. Err fails the
// Query/Exec call itself; PrepareErr fails statement preparation. Columns
// and Rows feed SELECTs, LastInsertID and RowsAffected feed writes.
type Reply struct {
	Columns      []string
	Rows         [][]driver.Value
	LastInsertID int64
	RowsAffected int64
	Err          error
	PrepareErr   error
}

// Script maps exact statement text to replies and records the arguments
// bound to each executed statement. Safe for concurrent use.
type Script struct {
	mu      sync.Mutex
	replies map[string]Reply
	calls   map[string][][]driver.Value
}

func NewScript() *Script {
	return &Script{
		replies: make(map[string]Reply),
		calls:   make(map[string][][]driver.Value),
	}
}

// On registers the reply for a statement and returns the script for
// chaining. Matching is by exact text, the same string the caller passes to
// the executor.
func (s *Script) On(query string, r Reply) *Script {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[query] = r
	return s
}

// Calls returns the argument lists bound to each execution of query, in
// order.
func (s *Script) Calls(query string) [][]driver.Value {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[query]
}

func (s *Script) lookup(query string) (Reply, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.replies[query]
	return r, ok
}

func (s *Script) record(query string, args []driver.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[query] = append(s.calls[query], append([]driver.Value(nil), args...))
}

var (
	registerOnce sync.Once
	openSeq      atomic.Int64
	scripts      sync.Map // dsn -> *Script
)

// Open returns a *sql.DB backed by the script. Each call gets its own DSN
// so parallel tests never share state.
func Open(s *Script) *sql.DB {
	registerOnce.Do(func() { sql.Register("querytest", drv{}) })
	dsn := strconv.FormatInt(openSeq.Add(1), 10)
	scripts.Store(dsn, s)
	db, err := sql.Open("querytest", dsn)
	if err != nil {
		// Unreachable: the driver is registered above.
		panic(err)
	}
	return db
}

type drv struct{}

func (drv) Open(dsn string) (driver.Conn, error) {
	v, ok := scripts.Load(dsn)
	if !ok {
		return nil, fmt.Errorf("querytest: unknown dsn %q", dsn)
	}
	return &conn{script: v.(*Script)}, nil
}

type conn struct{ script *Script }

func (c *conn) Prepare(query string) (driver.Stmt, error) {
	r, ok := c.script.lookup(query)
	if !ok {
		return nil, fmt.Errorf("querytest: unscripted statement: %s", query)
	}
	if r.PrepareErr != nil {
		return nil, r.PrepareErr
	}
	return &stmt{script: c.script, query: query, reply: r}, nil
}

func (c *conn) Close() error { return nil }

func (c *conn) Begin() (driver.Tx, error) {
	return nil, errors.New("querytest: transactions not supported")
}

type stmt struct {
	script *Script
	query  string
	reply  Reply
}

func (s *stmt) Close() error { return nil }

// NumInput returns -1 so database/sql skips placeholder count checks;
// replies are keyed by statement text alone.
func (s *stmt) NumInput() int { return -1 }

func (s *stmt) Exec(args []driver.Value) (driver.Result, error) {
	s.script.record(s.query, args)
	if s.reply.Err != nil {
		return nil, s.reply.Err
	}
	return result{id: s.reply.LastInsertID, n: s.reply.RowsAffected}, nil
}

func (s *stmt) Query(args []driver.Value) (driver.Rows, error) {
	s.script.record(s.query, args)
	if s.reply.Err != nil {
		return nil, s.reply.Err
	}
	return &rows{columns: s.reply.Columns, data: s.reply.Rows}, nil
}

type result struct{ id, n int64 }

func (r result) LastInsertId() (int64, error) { return r.id, nil }
func (r result) RowsAffected() (int64, error) { return r.n, nil }

type rows struct {
	columns []string
	data    [][]driver.Value
	pos     int
}

func (r *rows) Columns() []string { return r.columns }
func (r *rows) Close() error      { return nil }

func (r *rows) Next(dest []driver.Value) error {
	if r.pos >= len(r.data) {
		return io.EOF
	}
	copy(dest, r.data[r.pos])
	r.pos++
	return nil
}
