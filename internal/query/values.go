package query

import "strconv"

// String extracts a column from a row as a string, tolerating the value
// types different drivers produce. Missing columns yield "".
func String(r Row, col string) string {
	switch t := r[col].(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}

// Int64 extracts a column from a row as an int64. Non-numeric or missing
// values yield 0.
func Int64(r Row, col string) int64 {
	switch t := r[col].(type) {
	case int64:
		return t
	case int32:
		return int64(t)
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case []byte:
		if n, err := strconv.ParseInt(string(t), 10, 64); err == nil {
			return n
		}
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}
	return 0
}
