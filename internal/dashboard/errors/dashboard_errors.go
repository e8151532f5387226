package dashboarderrors

import (
	"net/http"

	"go-paygap/internal/shared/apperror"
)

var (
	ErrInvalidColumn = apperror.New(
		apperror.CodeInvalidInput,
		"column_value must be one of JobTitle, AgeCategory, Seniority, PerfEval",
		http.StatusBadRequest,
	)
	ErrInvalidViewOption = apperror.New(
		apperror.CodeInvalidInput,
		"view_option must be department or job_title",
		http.StatusBadRequest,
	)
	ErrNoData = apperror.New(
		apperror.CodeNoData,
		"No pay gap records match the selection",
		http.StatusNotFound,
	)
	ErrRenderFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to render chart",
		http.StatusInternalServerError,
	)
)
