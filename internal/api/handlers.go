package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/lifehub/lifehub/internal/error_values"
	"github.com/lifehub/lifehub/pkg/entity"
	"github.com/lifehub/lifehub/pkg/httputil"
)

// Shared helpers for the resource handlers. Every protected route starts
// with authedUser and maps missing-or-foreign rows onto one 404 answer, so
// callers can't probe for rows they don't own.

func (s *Server) authedUser(w http.ResponseWriter, r *http.Request) (*entity.User, bool) {
	user, ok := GetUserFromContext(r)
	if !ok {
		GetLoggerFromCtx(r.Context()).Error("rejected anonymous request")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return user, true
}

func limitParam(r *http.Request, def int) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 500 {
		return def
	}
	return limit
}

// idParam parses a uuid path param. A malformed id can't address any row,
// so the caller answers the same 404 as for a missing one.
func idParam(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.UUID{}, false
	}
	return id, true
}

func writeIfValidationErr(w http.ResponseWriter, err error) bool {
	var vErr *errorvalues.ValidationError
	if errors.As(err, &vErr) {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, vErr.Message)
		return true
	}
	return false
}

// notFoundOrOwner reports whether err means the row is missing or owned by
// someone else. Both cases get an identical 404 body.
func notFoundOrOwner(err error, notFound error) bool {
	return errors.Is(err, notFound) || errors.Is(err, errorvalues.ErrWrongOwner)
}
