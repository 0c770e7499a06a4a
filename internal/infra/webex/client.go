// Package webex talks to the Webex REST API: people lookup and message delivery.
package webex

import (
	"io"
	"log/slog"
	"strings"

	"github.com/aalvaropc/wxsend/internal/infra/httpclient"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://webexapis.com/v1"

type Client struct {
	exec    *httpclient.Executor
	baseURL string
	token   string
	logger  *slog.Logger
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

func WithExecutor(e *httpclient.Executor) Option {
	return func(c *Client) { c.exec = e }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a client authenticating every request with token.
func New(token string, opts ...Option) *Client {
	c := &Client{
		exec:    httpclient.NewExecutor(),
		baseURL: DefaultBaseURL,
		token:   token,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) authHeader() string {
	return "Bearer " + c.token
}
