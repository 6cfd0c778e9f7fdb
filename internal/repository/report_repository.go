package repository

import (
	"context"

	"github.com/iliyamo/movie-portal/internal/query"
)

// ReportRepo runs the six fixed report queries. None of them takes user
// input; the SQL shape, ordering and limits are part of the product contract
// and must not be rewritten through a query builder.
type ReportRepo struct {
	Exec *query.Executor
}

func NewReportRepo(e *query.Executor) *ReportRepo { return &ReportRepo{Exec: e} }

const (
	recentMoviesSQL = `SELECT MOVIE.Title, MOVIE.Year
		FROM MOVIE
		ORDER BY MOVIE.Year DESC
		LIMIT 15`

	directorsSQL = `SELECT DIRECTOR.Names, DIRECTOR.Genre
		FROM DIRECTOR
		ORDER BY DIRECTOR.Names ASC
		LIMIT 15`

	actorCountsSQL = `SELECT ACTOR.Genre, COUNT(ACTOR.Genre) AS Actors
		FROM ACTOR
		GROUP BY ACTOR.Genre`

	theatersSQL = `SELECT THEATER.CompanyName, THEATER.City, THEATER.PhoneNumber
		FROM THEATER`

	actedInSQL = `SELECT ACTOR.Names, MOVIE.Title, MOVIE.Year
		FROM ACTOR
		INNER JOIN ACTED_IN ON ACTOR.AID = ACTED_IN.AID
		INNER JOIN MOVIE ON MOVIE.ID = ACTED_IN.MID
		ORDER BY MOVIE.Year DESC
		LIMIT 15`

	topTenSQL = `SELECT MOVIE.Title, MOVIE.Votes
		FROM MOVIE
		GROUP BY MOVIE.Title
		ORDER BY MOVIE.Votes DESC
		LIMIT 10`
)

func (r *ReportRepo) run(ctx context.Context, q string) (query.RowSet, error) {
	res, err := r.Exec.Execute(ctx, q)
	if err != nil {
		return nil, err
	}
	return res.Rows, nil
}

// RecentMovies returns the 15 most recent movies by year.
func (r *ReportRepo) RecentMovies(ctx context.Context) (query.RowSet, error) {
	return r.run(ctx, recentMoviesSQL)
}

// Directors returns the first 15 directors ordered by name.
func (r *ReportRepo) Directors(ctx context.Context) (query.RowSet, error) {
	return r.run(ctx, directorsSQL)
}

// ActorCounts returns one row per genre with the number of actors in it.
func (r *ReportRepo) ActorCounts(ctx context.Context) (query.RowSet, error) {
	return r.run(ctx, actorCountsSQL)
}

// Theaters returns every theater.
func (r *ReportRepo) Theaters(ctx context.Context) (query.RowSet, error) {
	return r.run(ctx, theatersSQL)
}

// ActedIn returns 15 actor/movie pairs ordered by movie year.
func (r *ReportRepo) ActedIn(ctx context.Context) (query.RowSet, error) {
	return r.run(ctx, actedInSQL)
}

// TopTen returns the ten movies with the most votes.
func (r *ReportRepo) TopTen(ctx context.Context) (query.RowSet, error) {
	return r.run(ctx, topTenSQL)
}
