// Package fetch retrieves a profile from the remote endpoint.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/fsmiamoto/profilebox/internal/logging"
	"github.com/fsmiamoto/profilebox/internal/profile"
)

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 1 << 20

// Client fetches the profile published at url.
type Client interface {
	Fetch(ctx context.Context, url string) (profile.Profile, error)
}

// HTTPClient is the Client used by the CLI: one GET, no retries.
type HTTPClient struct {
	client    *http.Client
	userAgent string
	log       logging.Logger
}

// NewHTTPClient returns an HTTPClient using hc, or a default *http.Client
// when hc is nil. No timeout is applied beyond what ctx carries.
func NewHTTPClient(hc *http.Client, userAgent string, log logging.Logger) *HTTPClient {
	if hc == nil {
		hc = &http.Client{}
	}
	return &HTTPClient{client: hc, userAgent: userAgent, log: log}
}

func (c *HTTPClient) Fetch(ctx context.Context, url string) (profile.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return profile.Profile{}, &TransportError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.log.Debugf("GET %s", url)
	resp, err := c.client.Do(req)
	if err != nil {
		return profile.Profile{}, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()
	c.log.Debugf("GET %s: %s", url, resp.Status)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return profile.Profile{}, &HTTPStatusError{URL: url, StatusCode: resp.StatusCode}
	}

	// One byte past the limit tells a full body from a cut one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return profile.Profile{}, &TransportError{URL: url, Err: err}
	}
	if len(body) > maxBodyBytes {
		return profile.Profile{}, &TransportError{URL: url, Err: ErrBodyTooLarge}
	}
	return Decode(body)
}

// Decode parses a { "data": {...} } response body into a Profile.
func Decode(body []byte) (profile.Profile, error) {
	var top any
	if err := json.Unmarshal(body, &top); err != nil {
		return profile.Profile{}, &ParseError{Err: err}
	}

	obj, ok := top.(map[string]any)
	if !ok {
		return profile.Profile{}, &ShapeError{Err: errors.New("top-level value is not an object")}
	}
	raw, ok := obj["data"]
	if !ok || raw == nil {
		return profile.Profile{}, &ShapeError{Err: ErrMissingData}
	}
	data, ok := raw.(map[string]any)
	if !ok {
		return profile.Profile{}, &ShapeError{Err: errors.New(`"data" is not an object`)}
	}
	return profile.FromMap(data), nil
}
