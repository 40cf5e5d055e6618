package utils

import (
	"net/http"
	"strconv"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// PageParams reads ?page and ?limit from the request and converts them
// to limit/offset. Out-of-range values fall back to the defaults.
func PageParams(r *http.Request) (limit, offset int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit, (page - 1) * limit
}
