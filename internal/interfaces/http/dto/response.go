// Package dto defines the wire-level envelopes shared by every handler.
package dto

// ErrorInfo carries a machine-readable code and a human-readable message
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

// NewErrorResponse creates an error response body
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorInfo{Code: code, Message: message}}
}

// ListResponse is the envelope for collection endpoints
type ListResponse struct {
	Count   int64 `json:"count"`
	Results any   `json:"results"`
}

// NewListResponse wraps a result page with its total count
func NewListResponse(count int64, results any) ListResponse {
	return ListResponse{Count: count, Results: results}
}
