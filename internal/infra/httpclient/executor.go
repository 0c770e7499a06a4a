package httpclient

import (
	"context"
	"io"
	"net/http"
	"time"
)

// ResponseData captures the response details and duration.
// BodyErr is set when the status line arrived but the body could not be read;
// callers decide whether that matters.
type ResponseData struct {
	Status    int
	Headers   http.Header
	BodyBytes []byte
	BodyErr   error
	Duration  time.Duration
}

// Success reports whether the status is 2xx.
func (r ResponseData) Success() bool {
	return r.Status >= 200 && r.Status < 300
}

// Executor executes HTTP requests with timing. It never retries.
type Executor struct {
	client  *http.Client
	timeout time.Duration
}

// ExecutorOption allows configuring an Executor.
type ExecutorOption func(*Executor)

// WithTimeout sets the default timeout applied to requests.
func WithTimeout(timeout time.Duration) ExecutorOption {
	return func(e *Executor) { e.timeout = timeout }
}

// WithClient sets a custom HTTP client.
func WithClient(client *http.Client) ExecutorOption {
	return func(e *Executor) { e.client = client }
}

// NewExecutor builds an Executor with a default client and timeout.
func NewExecutor(opts ...ExecutorOption) *Executor {
	cfg := DefaultConfig()
	e := &Executor{
		client:  New(cfg),
		timeout: cfg.Timeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Do executes the request and returns response data plus duration.
// A non-nil error means no response was received at all.
func (e *Executor) Do(ctx context.Context, req *http.Request) (ResponseData, error) {
	start := time.Now()
	ctxWithTimeout := ctx
	cancel := func() {}
	if e.timeout > 0 {
		ctxWithTimeout, cancel = context.WithTimeout(ctx, e.timeout)
	}
	defer cancel()

	resp, err := e.client.Do(req.WithContext(ctxWithTimeout))
	if err != nil {
		return ResponseData{Duration: time.Since(start)}, err
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)

	return ResponseData{
		Status:    resp.StatusCode,
		Headers:   resp.Header.Clone(),
		BodyBytes: body,
		BodyErr:   readErr,
		Duration:  time.Since(start),
	}, nil
}
