package clientesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// url builds a complete URL from the base URL and a resource-relative path.
func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

func idPath(id string) string {
	return "/" + url.PathEscape(id)
}

// doRequest sends a request, JSON-encoding body when non-nil.
func (c *SDKClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Op: "rate limit", Err: err}
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "send request", Err: err}
	}
	return resp, nil
}

// decodeJSON reads the response and decodes it into target on any 2xx status.
// A nil target only drains the body. A non-nil target requires a body: an
// empty or null reply is reported as ErrEmptyResponse.
func decodeJSON(resp *http.Response, target any) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: "read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(resp.StatusCode, bodyBytes)
	}

	if target == nil {
		return nil
	}

	if trimmed := bytes.TrimSpace(bodyBytes); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return &TransportError{Op: "decode response", Err: ErrEmptyResponse}
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return &TransportError{Op: "decode response", Err: err}
	}
	return nil
}
