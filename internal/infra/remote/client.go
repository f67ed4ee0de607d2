package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"reservation-service/internal/pkg/errs"
)

// The room and guest services speak plain JSON over HTTP. Clients here are
// call-scoped: the orchestrator acquires one per operation from a factory and
// must Close it on every exit path. Each request is a single attempt bounded
// by the configured timeout; there is no retry or circuit breaking.

type httpClient struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

func newHTTPClient(baseURL string, timeout time.Duration) *httpClient {
	return &httpClient{
		baseURL: baseURL,
		timeout: timeout,
		client:  &http.Client{},
	}
}

// Close releases the underlying connection resources.
func (c *httpClient) Close() {
	c.client.CloseIdleConnections()
}

// getJSON issues a GET and decodes the body into out. A 404 yields
// (false, nil): the record is absent, not an error.
func (c *httpClient) getJSON(ctx context.Context, path string, out any) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false, errs.Wrap(err, "failed to build request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, errs.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, errs.Newf("unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, errs.Wrap(err, "failed to decode response body")
	}
	return true, nil
}

// putJSON issues a PUT with a JSON body and drains the response.
func (c *httpClient) putJSON(ctx context.Context, path string, in any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(in)
	if err != nil {
		return errs.Wrap(err, "failed to encode request body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "request failed")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.Newf("unexpected status %d from %s", resp.StatusCode, path)
	}
	return nil
}
