package utils

import (
	"net/http"
	"strconv"
)

// ParsePagination reads ?page= and ?limit= and returns mongo-ready skip and
// limit values. Limit defaults to def and is capped at max.
func ParsePagination(r *http.Request, def, max int64) (skip, limit int64) {
	q := r.URL.Query()

	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.ParseInt(q.Get("limit"), 10, 64)
	if limit < 1 {
		limit = def
	}
	if limit > max {
		limit = max
	}

	return (page - 1) * limit, limit
}

// Page returns the 1-based page number for a skip/limit pair.
func Page(skip, limit int64) int64 {
	if limit <= 0 {
		return 1
	}
	return skip/limit + 1
}

// TotalPages rounds a document count up to whole pages.
func TotalPages(count, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return (count + limit - 1) / limit
}
