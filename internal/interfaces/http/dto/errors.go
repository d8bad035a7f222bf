package dto

import "net/http"

// Error codes the API emits directly. Domain error codes pass through
// unchanged; this file only decides their HTTP status.
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps domain and API error codes to HTTP statuses
var errorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest: http.StatusBadRequest,
	"INVALID_INPUT":   http.StatusBadRequest,
	"INVALID_STATUS":  http.StatusBadRequest,
	"NEGATIVE_AMOUNT": http.StatusBadRequest,

	ErrCodeUnauthorized:   http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_REVOKED":       http.StatusUnauthorized,
	"INVALID_TOKEN":       http.StatusUnauthorized,

	ErrCodeForbidden: http.StatusForbidden,

	ErrCodeNotFound: http.StatusNotFound,

	"ALREADY_EXISTS":       http.StatusConflict,
	"DUPLICATE_REFERENCE":  http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	"INVALID_STATE":         http.StatusUnprocessableEntity,
	"CANNOT_DELETE":         http.StatusUnprocessableEntity,
	"CREDIT_EXCEEDS_TOTAL":  http.StatusUnprocessableEntity,
	"CREDIT_WRONG_CUSTOMER": http.StatusUnprocessableEntity,

	ErrCodeInternal: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting to
// 500 for codes it does not recognize.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
