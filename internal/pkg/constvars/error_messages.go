package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"url":      "must be a valid URL",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
	"gt":  true,
	"gte": true,
	"lt":  true,
	"lte": true,
}

// Error messages for developers
const (
	ErrDevCreateHTTPRequest  = "failed to create HTTP request"
	ErrDevSendHTTPRequest    = "failed to send HTTP request"
	ErrDevReadResponseBody   = "failed to read response body"
	ErrDevCannotMarshalJSON  = "cannot marshal JSON"
	ErrDevDecodeResponse     = "failed to decode response body"
	ErrDevValidationFailed   = "response validation failed"
	ErrDevResourceNotFound   = "resource not found"
	ErrDevUnexpectedResponse = "unexpected API response"

	ErrDevQueryFieldNotSet  = "a field must be set before adding a filter"
	ErrDevQueryNoFieldGiven = "no field was given to build the query"
)
