package dentalink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"dentalink-client/dentalink/exceptions"
	"dentalink-client/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type apiErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ensureRequestID reuses a correlation ID already carried by the context or
// attaches a fresh one, so every log line of one call shares the same ID.
func ensureRequestID(ctx context.Context) (context.Context, string) {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok && requestID != "" {
		return ctx, requestID
	}
	requestID := uuid.NewString()
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID), requestID
}

func requestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// makeURI appends the filter document as a single URL-escaped `q` parameter.
// An empty document leaves the URI bare.
func (c *Client) makeURI(endpoint string, queryParams map[string]any) (string, error) {
	uri := c.baseURL + endpoint
	if len(queryParams) == 0 {
		return uri, nil
	}
	doc, err := json.Marshal(queryParams)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err, endpoint)
	}
	return uri + "?" + constvars.QueryParamKey + "=" + url.QueryEscape(string(doc)), nil
}

// do issues one request with the default headers attached and returns the raw
// response body. Non-2xx statuses are mapped to the error taxonomy here so
// resource methods only deal with decoding.
func (c *Client) do(ctx context.Context, method, endpoint string, queryParams map[string]any, body any) ([]byte, error) {
	requestID := requestIDFromContext(ctx)

	uri, err := c.makeURI(endpoint, queryParams)
	if err != nil {
		c.log.Error("Client.do error building URI",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			c.log.Error("Client.do error marshaling request body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotMarshalJSON(err, endpoint)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, uri, reader)
	if err != nil {
		c.log.Error("Client.do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err, endpoint)
	}
	req.Header.Set(constvars.HeaderAuthorization, fmt.Sprintf(constvars.AuthorizationTokenFmt, c.token))
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	c.log.Debug("Client.do sending request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingURLKey, uri),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Client.do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err, endpoint)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("Client.do error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadResponseBody(err, endpoint)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode > 299 {
		message := apiErrorMessage(responseBody)
		c.log.Error("Client.do API error response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, endpoint),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		if resp.StatusCode == constvars.StatusNotFound {
			return nil, exceptions.ErrResourceNotFound(endpoint, message)
		}
		return nil, exceptions.ErrAPIResponse(resp.StatusCode, endpoint, message)
	}

	c.log.Debug("Client.do received response",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)
	return responseBody, nil
}

// apiErrorMessage extracts the server message from an error body, falling
// back to the raw text when the body is not the documented error shape.
func apiErrorMessage(body []byte) string {
	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Error.Message == "" {
		return string(body)
	}
	return parsed.Error.Message
}
