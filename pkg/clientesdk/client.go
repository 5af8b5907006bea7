package clientesdk

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/salario/pkg/slogx"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "http://localhost:4000/api/clientes"
	DefaultTimeout = 10 * time.Second
)

// SDKClient is a client for the clientes resource.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// Limiter throttles outgoing requests when set. See SetRateLimit.
	Limiter *rate.Limiter
}

// NewSDKClient creates a client with a logging transport and the default timeout.
func NewSDKClient(baseURL string) *SDKClient {
	return NewSDKClientWithLogger(baseURL, nil)
}

// NewSDKClientWithLogger is NewSDKClient with an explicit fallback logger for
// requests whose context carries none.
func NewSDKClientWithLogger(baseURL string, logger *slog.Logger) *SDKClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: slogx.NewTransport(nil, logger),
		},
	}
}

// SetTimeout changes the per-request timeout. Zero or negative disables it.
func (c *SDKClient) SetTimeout(d time.Duration) {
	if d < 0 {
		d = 0
	}
	c.HTTPClient.Timeout = d
}

// SetRateLimit allows at most rps requests per second. Zero or negative
// removes the limit.
func (c *SDKClient) SetRateLimit(rps float64) {
	if rps <= 0 {
		c.Limiter = nil
		return
	}
	c.Limiter = rate.NewLimiter(rate.Limit(rps), 1)
}
