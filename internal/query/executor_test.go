package query

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-portal/internal/query/querytest"
)

func TestIsSelect(t *testing.T) {
	assert.True(t, isSelect("SELECT 1"))
	assert.True(t, isSelect("select * from MOVIE"))
	assert.True(t, isSelect("\n\t  SeLeCt Title FROM MOVIE"))
	assert.False(t, isSelect("INSERT INTO Users VALUES (?)"))
	assert.False(t, isSelect("UPDATE Users SET cname = ?"))
	assert.False(t, isSelect(""))
}

func TestConvertValue(t *testing.T) {
	assert.Equal(t, "abc", convertValue([]byte("abc")))
	assert.Equal(t, int64(7), convertValue(int64(7)))
	assert.Nil(t, convertValue(nil))
}

func TestExecuteSelectMaterializesRowSet(t *testing.T) {
	const q = "SELECT Title, Year FROM MOVIE ORDER BY Year DESC LIMIT 15"
	script := querytest.NewScript().On(q, querytest.Reply{
		Columns: []string{"Title", "Year"},
		Rows: [][]driver.Value{
			{[]byte("Coco"), int64(2017)},
			{[]byte("Up"), int64(2009)},
		},
	})
	exec := NewExecutor(querytest.Open(script))

	res, err := exec.Execute(context.Background(), q)
	require.NoError(t, err)

	assert.True(t, res.Select)
	assert.Nil(t, res.Outcome)
	require.Len(t, res.Rows, 2)
	// Row order follows the driver; []byte cells become strings.
	assert.Equal(t, Row{"Title": "Coco", "Year": int64(2017)}, res.Rows[0])
	assert.Equal(t, Row{"Title": "Up", "Year": int64(2009)}, res.Rows[1])
}

func TestExecuteSelectEmpty(t *testing.T) {
	const q = "SELECT Title FROM MOVIE"
	script := querytest.NewScript().On(q, querytest.Reply{Columns: []string{"Title"}})
	exec := NewExecutor(querytest.Open(script))

	res, err := exec.Execute(context.Background(), q)
	require.NoError(t, err)
	assert.True(t, res.Select)
	assert.Empty(t, res.Rows)
}

func TestExecuteNonSelectReturnsOutcome(t *testing.T) {
	const q = "INSERT INTO Users (u_name, password, cname, email) VALUES (?, ?, ?, ?)"
	script := querytest.NewScript().On(q, querytest.Reply{
		LastInsertID: 5,
		RowsAffected: 1,
	})
	exec := NewExecutor(querytest.Open(script))

	res, err := exec.Execute(context.Background(), q, "alice", "hash", "Alice A", "a@x.com")
	require.NoError(t, err)

	assert.False(t, res.Select)
	assert.Nil(t, res.Rows)
	require.NotNil(t, res.Outcome)
	assert.Equal(t, int64(5), res.Outcome.LastInsertID)
	assert.Equal(t, int64(1), res.Outcome.RowsAffected)
}

func TestExecuteWrapsPrepareFailure(t *testing.T) {
	const q = "SELECT oops"
	cause := errors.New("syntax error near 'oops'")
	script := querytest.NewScript().On(q, querytest.Reply{PrepareErr: cause})
	exec := NewExecutor(querytest.Open(script))

	_, err := exec.Execute(context.Background(), q)

	var qe *QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, q, qe.Query)
	assert.ErrorIs(t, err, cause)
}

func TestExecuteWrapsQueryFailure(t *testing.T) {
	const q = "SELECT Title FROM MOVIE"
	cause := errors.New("server has gone away")
	script := querytest.NewScript().On(q, querytest.Reply{Err: cause})
	exec := NewExecutor(querytest.Open(script))

	_, err := exec.Execute(context.Background(), q)

	var qe *QueryError
	require.ErrorAs(t, err, &qe)
	assert.ErrorIs(t, err, cause)
}

func TestExecuteWrapsExecFailure(t *testing.T) {
	const q = "INSERT INTO Users (u_name) VALUES (?)"
	cause := errors.New("Error 1062 (23000): Duplicate entry 'alice'")
	script := querytest.NewScript().On(q, querytest.Reply{Err: cause})
	exec := NewExecutor(querytest.Open(script))

	_, err := exec.Execute(context.Background(), q, "alice")

	var qe *QueryError
	require.ErrorAs(t, err, &qe)
	assert.ErrorIs(t, err, cause)
}

func TestQueryError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &QueryError{Query: "SELECT 1\nFROM dual", Err: cause}

	assert.Contains(t, err.Error(), "connection refused")
	assert.Contains(t, err.Error(), "SELECT 1")
	assert.NotContains(t, err.Error(), "dual") // only the first line is quoted
	assert.ErrorIs(t, err, cause)
}
