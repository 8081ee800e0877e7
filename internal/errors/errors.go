package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Using sentinel errors allows services to return specific, recognizable error types
// without coupling them to implementation details like HTTP status codes. The API
// layer can then use `errors.Is()` to check for these specific errors and map
// them to the correct HTTP responses.

var (
	// ErrValidation signifies that input data provided by a client failed
	// business rule validation (empty or oversized message, malformed history).
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrRateLimited signifies that a client has exceeded its request quota
	// for the current window.
	// This is typically mapped to a 429 Too Many Requests HTTP status.
	ErrRateLimited = errors.New("rate limited")

	// ErrChatDisabled signifies that the chat feature has been switched off
	// via configuration. Requests are rejected before the pipeline runs.
	// This is typically mapped to a 503 Service Unavailable HTTP status.
	ErrChatDisabled = errors.New("chat disabled")

	// ErrProviderExhausted signifies that every credential in the upstream
	// pool was tried and all failed with a rotatable error. The caller only
	// ever sees a generic message; the per-credential detail is logged.
	ErrProviderExhausted = errors.New("all upstream credentials exhausted")

	// ErrProviderRejected signifies that the upstream provider rejected the
	// request for a reason rotation cannot fix (e.g. a content-policy block).
	ErrProviderRejected = errors.New("upstream provider rejected request")

	// ErrNotFound signifies that a requested resource could not be located.
	// This is typically mapped to a 404 Not Found HTTP status.
	ErrNotFound = errors.New("resource not found")

	// ErrInternal signifies an unexpected error on the server. This is a generic
	// error used to prevent leaking sensitive implementation details to the client.
	// This is typically mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)
