package repository

import (
	"context"
	"database/sql/driver"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-portal/internal/query"
	"github.com/iliyamo/movie-portal/internal/query/querytest"
)

func TestTopTen(t *testing.T) {
	script := querytest.NewScript().On(topTenSQL, querytest.Reply{
		Columns: []string{"Title", "Votes"},
		Rows: [][]driver.Value{
			{[]byte("The Shawshank Redemption"), int64(2500000)},
			{[]byte("The Godfather"), int64(1900000)},
		},
	})
	repo := NewReportRepo(query.NewExecutor(querytest.Open(script)))

	rows, err := repo.TopTen(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "The Shawshank Redemption", query.String(rows[0], "Title"))
	assert.Equal(t, int64(1900000), query.Int64(rows[1], "Votes"))
}

func TestReportsEmptyTables(t *testing.T) {
	// Every report must come back as an empty row set, not an error, when
	// its tables hold no data.
	script := querytest.NewScript().
		On(recentMoviesSQL, querytest.Reply{Columns: []string{"Title", "Year"}}).
		On(directorsSQL, querytest.Reply{Columns: []string{"Names", "Genre"}}).
		On(actorCountsSQL, querytest.Reply{Columns: []string{"Genre", "Actors"}}).
		On(theatersSQL, querytest.Reply{Columns: []string{"CompanyName", "City", "PhoneNumber"}}).
		On(actedInSQL, querytest.Reply{Columns: []string{"Names", "Title", "Year"}}).
		On(topTenSQL, querytest.Reply{Columns: []string{"Title", "Votes"}})
	repo := NewReportRepo(query.NewExecutor(querytest.Open(script)))

	ctx := context.Background()
	for name, fetch := range map[string]func(context.Context) (query.RowSet, error){
		"RecentMovies": repo.RecentMovies,
		"Directors":    repo.Directors,
		"ActorCounts":  repo.ActorCounts,
		"Theaters":     repo.Theaters,
		"ActedIn":      repo.ActedIn,
		"TopTen":       repo.TopTen,
	} {
		rows, err := fetch(ctx)
		require.NoError(t, err, name)
		assert.Empty(t, rows, name)
	}
}
