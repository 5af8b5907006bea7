package clientesdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrMissingID is returned before any request is made for an empty record id.
var ErrMissingID = errors.New("clientesdk: missing client id")

// ErrEmptyResponse is wrapped in a TransportError when a call that returns data
// gets a 2xx reply without a body.
var ErrEmptyResponse = errors.New("empty response body")

// TransportError reports a request that produced no usable response.
type TransportError struct {
	Op  string // e.g. "send request", "read response"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError reports a non-2xx response.
type ServiceError struct {
	StatusCode int

	// Message is the service's explanation, empty if the body had none.
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// IsValidation reports whether err is a field problem reported by the service.
func IsValidation(err error) bool {
	var se *ServiceError
	return errors.As(err, &se) &&
		(se.StatusCode == http.StatusBadRequest || se.StatusCode == http.StatusUnprocessableEntity)
}

// IsTransport reports whether err never reached the service.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// Detail returns the most useful text for a user: the service's message when
// there is one, otherwise the error itself.
func Detail(err error) string {
	if err == nil {
		return ""
	}
	var se *ServiceError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return err.Error()
}

// parseErrorResponse turns a non-2xx response body into a *ServiceError.
func parseErrorResponse(statusCode int, body []byte) error {
	se := &ServiceError{StatusCode: statusCode}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Error != "":
			se.Message = errResp.Error
		case errResp.Message != "":
			se.Message = errResp.Message
		}
		return se
	}

	// Plain text bodies are passed through when short enough to show
	if text := strings.TrimSpace(string(body)); text != "" && len(text) <= 200 && !strings.HasPrefix(text, "<") {
		se.Message = text
	}
	return se
}
