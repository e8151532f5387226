package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeNotFound     = "NOT_FOUND"
	CodeNoData       = "NO_DATA"
	CodeTooMany      = "TOO_MANY_REQUESTS"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeQueryFailed        = "QUERY_FAILED"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
