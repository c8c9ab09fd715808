package fetch

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ErrMissingData is wrapped by a ShapeError when the response has no "data"
// object.
var ErrMissingData = errors.New(`response has no "data" field`)

// ErrBodyTooLarge is wrapped by a TransportError when the response body is
// longer than maxBodyBytes.
var ErrBodyTooLarge = fmt.Errorf("response body exceeds %d bytes", maxBodyBytes)

// TransportError reports a request that never produced a response.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	cause := e.Err
	// *url.Error repeats the method and URL.
	var urlErr *url.Error
	if errors.As(cause, &urlErr) {
		cause = urlErr.Err
	}
	return fmt.Sprintf("request to %s failed: %v", e.URL, cause)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPStatusError reports a response with a non-2xx status.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return strings.TrimSpace(fmt.Sprintf("GET %s returned HTTP %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode)))
}

// ParseError reports a response body that is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON in response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ShapeError reports valid JSON that is not shaped like { "data": {...} }.
type ShapeError struct {
	Err error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected response shape: %v", e.Err)
}

func (e *ShapeError) Unwrap() error { return e.Err }
