package paygap

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	paygaperrors "go-paygap/internal/paygap/errors"
	"go-paygap/internal/shared/apperror"
	"go-paygap/internal/shared/connection"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	errKindUnavailable = "unavailable"
	errKindQuery       = "query"
	errKindCanceled    = "canceled"
)

// mapRepositoryError sorts a load failure into "the store could not be
// reached" and "the store answered with an error". Caller cancellation is
// returned unchanged.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return err
	}

	if errors.Is(err, connection.ErrAcquire) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) {
		return apperror.WithCause(paygaperrors.ErrDataSourceUnavailable, err)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return apperror.WithCause(paygaperrors.ErrDataSourceUnavailable, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return apperror.WithCause(paygaperrors.ErrDataSourceUnavailable, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "42P01":
			return apperror.WithCause(paygaperrors.ErrTableMissing, err)
		// class 08: connection exception, 57P0x: operator intervention / shutdown
		case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "57P0"):
			return apperror.WithCause(paygaperrors.ErrDataSourceUnavailable, err)
		}
	}

	return apperror.WithCause(paygaperrors.ErrQueryFailed, err)
}

func errorKind(mapped error) string {
	switch {
	case errors.Is(mapped, context.Canceled):
		return errKindCanceled
	case errors.Is(mapped, paygaperrors.ErrDataSourceUnavailable):
		return errKindUnavailable
	default:
		return errKindQuery
	}
}
