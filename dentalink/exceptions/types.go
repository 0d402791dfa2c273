package exceptions

import "fmt"

// TransportError covers failures before any HTTP status was obtained:
// request construction, connectivity, timeouts, body reads.
type TransportError struct {
	Endpoint   string
	DevMessage string
	Err        error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Endpoint, e.DevMessage, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response with the server-provided message.
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[HTTP %d] %s: %s", e.StatusCode, e.Endpoint, e.Message)
}

// NotFoundError is a 404 on an id-based lookup, kept distinct from APIError
// so callers can discriminate with errors.As.
type NotFoundError struct {
	Endpoint string
	Message  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("[HTTP 404] %s: %s", e.Endpoint, e.Message)
}

// ValidationError is a response body that does not match the expected record
// shape. Field names the first offending field when known.
type ValidationError struct {
	Endpoint string
	Field    string
	Message  string
	Err      error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %s", e.Endpoint, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Endpoint, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// QueryError is a misuse of the filter query builder.
type QueryError struct {
	Message string
}

func (e *QueryError) Error() string {
	return e.Message
}
