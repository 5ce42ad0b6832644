package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/lifehub/lifehub/internal/error_values"
)

type owned interface {
	Owner() uuid.UUID
}

// loadOwned is the single authorization guard for resources addressed by id.
// It loads the row and confirms it belongs to uid; a row with a different
// owner comes back as ErrWrongOwner, which callers fold into the same
// not-found answer as a missing row.
func loadOwned[T owned](ctx context.Context, uid uuid.UUID, notFound error, load func(context.Context) (T, error)) (T, error) {
	var zero T
	res, err := load(ctx)
	if err != nil {
		if errors.Is(err, notFound) {
			return zero, err
		}
		return zero, errors.New("repository error: " + err.Error())
	}
	if res.Owner() != uid {
		return zero, errorvalues.ErrWrongOwner
	}
	return res, nil
}
