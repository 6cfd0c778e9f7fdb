package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-portal/internal/middleware"
	"github.com/iliyamo/movie-portal/internal/query"
	"github.com/iliyamo/movie-portal/internal/view"
)

// ReportStore is the slice of the report repository the handlers need.
type ReportStore interface {
	RecentMovies(ctx context.Context) (query.RowSet, error)
	Directors(ctx context.Context) (query.RowSet, error)
	ActorCounts(ctx context.Context) (query.RowSet, error)
	Theaters(ctx context.Context) (query.RowSet, error)
	ActedIn(ctx context.Context) (query.RowSet, error)
	TopTen(ctx context.Context) (query.RowSet, error)
}

// ReportHandler serves the six fixed report pages. The handlers take no
// request input; a database failure propagates to the HTTP error handler.
type ReportHandler struct {
	Reports ReportStore
}

func NewReportHandler(r ReportStore) *ReportHandler { return &ReportHandler{Reports: r} }

func (h *ReportHandler) render(c echo.Context, tmpl, titleCol, name string,
	fetch func(context.Context) (query.RowSet, error)) error {

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	rows, err := fetch(ctx)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, tmpl, map[string]any{
		"pageTitle": view.TitleOr(rows, titleCol, name),
		"results":   rows,
		"user":      middleware.SessionData(c).User,
	})
}

// Movies lists the 15 most recent movies by year.
func (h *ReportHandler) Movies(c echo.Context) error {
	return h.render(c, "movies.html", "Title", "Movies", h.Reports.RecentMovies)
}

// Directors lists 15 directors by name.
func (h *ReportHandler) Directors(c echo.Context) error {
	return h.render(c, "directors.html", "Names", "Directors", h.Reports.Directors)
}

// ActorCounts shows the number of actors per genre.
func (h *ReportHandler) ActorCounts(c echo.Context) error {
	return h.render(c, "anum.html", "Genre", "Actors by Genre", h.Reports.ActorCounts)
}

// Theaters lists every theater.
func (h *ReportHandler) Theaters(c echo.Context) error {
	return h.render(c, "tlist.html", "CompanyName", "Theaters", h.Reports.Theaters)
}

// ActedIn lists actor/movie pairs by movie year.
func (h *ReportHandler) ActedIn(c echo.Context) error {
	return h.render(c, "actedin.html", "Names", "Acted In", h.Reports.ActedIn)
}

// TopTen lists the ten movies with the most votes.
func (h *ReportHandler) TopTen(c echo.Context) error {
	return h.render(c, "topten.html", "Title", "Top Ten Movies", h.Reports.TopTen)
}
