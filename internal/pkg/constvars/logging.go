package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingEndpointKey    = "endpoint"
	LoggingMethodKey      = "method"
	LoggingURLKey         = "url"
	LoggingStatusCodeKey  = "status_code"
	LoggingQueryParamsKey = "query_params"
	LoggingRecordCountKey = "record_count"
	LoggingCitaIDKey      = "cita_id"
)

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)
