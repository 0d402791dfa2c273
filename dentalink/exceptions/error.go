package exceptions

import (
	"dentalink-client/internal/pkg/constvars"
)

func ErrCreateHTTPRequest(err error, endpoint string) *TransportError {
	return &TransportError{Endpoint: endpoint, DevMessage: constvars.ErrDevCreateHTTPRequest, Err: err}
}

func ErrSendHTTPRequest(err error, endpoint string) *TransportError {
	return &TransportError{Endpoint: endpoint, DevMessage: constvars.ErrDevSendHTTPRequest, Err: err}
}

func ErrReadResponseBody(err error, endpoint string) *TransportError {
	return &TransportError{Endpoint: endpoint, DevMessage: constvars.ErrDevReadResponseBody, Err: err}
}

func ErrCannotMarshalJSON(err error, endpoint string) *TransportError {
	return &TransportError{Endpoint: endpoint, DevMessage: constvars.ErrDevCannotMarshalJSON, Err: err}
}

func ErrResourceNotFound(endpoint, message string) *NotFoundError {
	if message == "" {
		message = constvars.ErrDevResourceNotFound
	}
	return &NotFoundError{Endpoint: endpoint, Message: message}
}

func ErrAPIResponse(statusCode int, endpoint, message string) *APIError {
	if message == "" {
		message = constvars.ErrDevUnexpectedResponse
	}
	return &APIError{StatusCode: statusCode, Endpoint: endpoint, Message: message}
}

func ErrDecodeResponse(err error, endpoint string) *ValidationError {
	return &ValidationError{Endpoint: endpoint, Message: constvars.ErrDevDecodeResponse, Err: err}
}

func ErrResponseValidation(err error, endpoint string) *ValidationError {
	return &ValidationError{
		Endpoint: endpoint,
		Field:    FirstInvalidField(err),
		Message:  FormatFirstValidationError(err),
		Err:      err,
	}
}

func ErrQueryFieldNotSet() *QueryError {
	return &QueryError{Message: constvars.ErrDevQueryFieldNotSet}
}

func ErrQueryNoFieldGiven() *QueryError {
	return &QueryError{Message: constvars.ErrDevQueryNoFieldGiven}
}
