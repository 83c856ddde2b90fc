package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const defaultLimit = 20
const maxLimit = 100

// limitOffset parses the pagination query params. Unparseable or negative
// values fall back to the defaults, and limit is capped at maxLimit.
func limitOffset(r *http.Request) (int, int) {
	limit := defaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := 0
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			offset = n
		}
	}

	return limit, offset
}

// uuidVar returns the named path variable if it parses as a UUID. A
// malformed id can't match any row, so callers treat ok == false as
// not-found rather than as a validation error.
func uuidVar(r *http.Request, name string) (string, bool) {
	v := mux.Vars(r)[name]
	if _, err := uuid.Parse(v); err != nil {
		return "", false
	}
	return v, true
}
