// Package apiclient talks to the remote real-estate REST API on behalf of the
// signed-in administrator.
package apiclient

import (
	"net/http"
	"strings"
	"time"
)

const DefaultTimeout = 20 * time.Second

// Observer is notified once per upstream call with the operation name, the
// HTTP status (0 on transport failure) and the call duration.
type Observer func(operation string, status int, elapsed time.Duration)

// Client is safe for concurrent use. The upstream session cookies travel with
// each call's context, see WithCredentials.
type Client struct {
	baseURL    string
	httpClient *http.Client
	observe    Observer
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

func WithObserver(observe Observer) Option {
	return func(c *Client) {
		c.observe = observe
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}
