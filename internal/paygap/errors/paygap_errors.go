package paygaperrors

import (
	"net/http"

	"go-paygap/internal/shared/apperror"
)

var (
	ErrDataSourceUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"pay gap data source is unavailable",
		http.StatusServiceUnavailable,
	)
	ErrQueryFailed = apperror.New(
		apperror.CodeQueryFailed,
		"failed to query pay gap records",
		http.StatusInternalServerError,
	)
	ErrTableMissing = apperror.New(
		apperror.CodeQueryFailed,
		"pay_gap table does not exist",
		http.StatusInternalServerError,
	)
	ErrInvalidCSV = apperror.New(
		apperror.CodeInvalidInput,
		"invalid pay gap csv",
		http.StatusBadRequest,
	)
)
