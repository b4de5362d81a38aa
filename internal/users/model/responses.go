package model

// Response envelopes for the user API.

type MessageResponse struct {
	Message string `json:"message"`
}

type DataResponse struct {
	Message string `json:"message"`
	Data    *User  `json:"data"`
}

type ListResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Total   int64   `json:"total"`
	Data    []*User `json:"data"`
}

type UploadResponse struct {
	Message       string      `json:"message"`
	InsertedCount int         `json:"insertedCount"`
	UpdatedCount  int         `json:"updatedCount"`
	FailedCount   int         `json:"failedCount"`
	Failed        []FailedRow `json:"failed"`
}

// ValidationFailedResponse enumerates every violated field of a 400.
type ValidationFailedResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// InternalErrorResponse surfaces the original message of an unexpected
// failure. Diagnostic convenience, not a contract for callers to parse.
type InternalErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// ErrorResponse is the body for uncaught errors. TraceID is unique per
// occurrence so a report can be matched to the server log.
type ErrorResponse struct {
	TraceID string `json:"traceId"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}
