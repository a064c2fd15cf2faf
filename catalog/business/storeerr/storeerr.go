// Package storeerr maps data-store and cache failures onto API errors.
package storeerr

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"
)

// Wrap converts err into an *errs.Error carrying message. Errors that already
// are API errors pass through unchanged.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	var apiErr *errs.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, context.Canceled):
		return &errs.Error{Code: errs.Canceled, Message: message}
	case errors.Is(err, context.DeadlineExceeded):
		return &errs.Error{Code: errs.DeadlineExceeded, Message: message}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgerrcode.IsConnectionException(pgErr.Code) || pgerrcode.IsInsufficientResources(pgErr.Code) {
			return &errs.Error{Code: errs.Unavailable, Message: message}
		}
	}

	return &errs.Error{Code: errs.Internal, Message: message}
}
