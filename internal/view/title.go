package view

import "github.com/iliyamo/movie-portal/internal/query"

// TitleOr derives a page title from a row set: the named column of the first
// row when present and non-empty, otherwise the fallback. It never indexes
// into an empty row set, so report pages render cleanly with no results.
func TitleOr(rows query.RowSet, col, fallback string) string {
	if len(rows) == 0 {
		return fallback
	}
	if s := query.String(rows[0], col); s != "" {
		return s
	}
	return fallback
}
