package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	headerContentType = "Content-Type"
	headerAccept      = "Accept"
	headerUserAgent   = "User-Agent"
	contentTypeJSON   = "application/json"
	userAgent         = "estate-admin-console/1.0"
)

type request struct {
	operation   string
	method      string
	path        string
	body        io.Reader
	contentType string
}

func jsonRequest(operation, method, path string, payload any) (request, error) {
	req := request{operation: operation, method: method, path: path}
	if payload == nil {
		return req, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return request{}, fmt.Errorf("marshal %s body: %w", operation, err)
	}
	req.body = bytes.NewReader(raw)
	req.contentType = contentTypeJSON
	return req, nil
}

// do performs one upstream call. There is no retry: the caller surfaces the
// failure to the administrator.
func (c *Client) do(ctx context.Context, r request, result any) ([]*http.Cookie, error) {
	httpReq, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, r.body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", r.operation, err)
	}

	httpReq.Header.Set(headerAccept, contentTypeJSON)
	httpReq.Header.Set(headerUserAgent, userAgent)
	if r.contentType != "" {
		httpReq.Header.Set(headerContentType, r.contentType)
	}
	for _, cookie := range CredentialsFrom(ctx) {
		httpReq.AddCookie(cookie)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.record(r.operation, 0, start)
		return nil, fmt.Errorf("%s: request failed: %w", r.operation, err)
	}
	defer resp.Body.Close()
	c.record(r.operation, resp.StatusCode, start)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", r.operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseError(resp.StatusCode, respBody)
	}

	if result != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return nil, fmt.Errorf("%s: decode response: %w", r.operation, err)
		}
	}

	return resp.Cookies(), nil
}

func (c *Client) record(operation string, status int, start time.Time) {
	if c.observe != nil {
		c.observe(operation, status, time.Since(start))
	}
}
