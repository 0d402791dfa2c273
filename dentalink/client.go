// Package dentalink is a typed, synchronous client for the Dentalink
// clinic-management REST API. One Client reuses a single underlying HTTP
// client across sequential calls; it makes no guarantee about concurrent use,
// so callers needing parallel requests should use one Client per goroutine.
package dentalink

import (
	"net/http"
	"strings"
	"time"

	"dentalink-client/internal/pkg/constvars"

	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient builds a client for the API at baseURL authenticating with token.
// An empty baseURL selects the production API root. A nil logger disables
// logging.
func NewClient(baseURL, token string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = constvars.DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        logger,
	}
}
