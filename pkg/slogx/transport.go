package slogx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/salario/pkg/idx"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

// Transport is an http.RoundTripper that tags outgoing requests with a request
// ID and logs their outcome. A logger in the request context takes precedence
// over Logger. The request passed on to Base carries a context logger tagged
// with req_id.
type Transport struct {
	Base   http.RoundTripper
	Logger *slog.Logger
}

// NewTransport wraps base (http.DefaultTransport when nil).
func NewTransport(base http.RoundTripper, logger *slog.Logger) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{Base: base, Logger: logger}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	reqID := req.Header.Get(RequestIDHeader)
	generated := reqID == ""
	if generated {
		reqID = idx.New().String()
	}

	ctx := WithRequestID(WithContext(req.Context(), t.logger(req)), reqID)
	req = req.Clone(ctx)
	if generated {
		req.Header.Set(RequestIDHeader, reqID)
	}

	logger := FromContext(ctx).With(
		"method", req.Method,
		"url", req.URL.Redacted(),
	)

	resp, err := t.Base.RoundTrip(req)
	duration := time.Since(start).Milliseconds()
	if err != nil {
		logger.Warn("http_request_failed", "error", err, "duration_ms", duration)
		return nil, err
	}

	logger.Debug("http_request", "status", resp.StatusCode, "duration_ms", duration)
	return resp, nil
}

func (t *Transport) logger(req *http.Request) *slog.Logger {
	if l, ok := req.Context().Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	if t.Logger != nil {
		return t.Logger
	}
	return slog.Default()
}
