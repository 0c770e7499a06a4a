package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrFileNotFound   = errors.New("file not found")
	ErrMissingToken   = errors.New("missing access token")
	ErrInvalidRequest = errors.New("invalid request")
	ErrNoItems        = errors.New("no 'items' field in response")
	ErrNoPerson       = errors.New("no person found")
	ErrNoPersonID     = errors.New("no 'id' in person data")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindUsage         ErrorKind = "usage"
	KindInput         ErrorKind = "input"
	KindTransport     ErrorKind = "transport"
	KindProtocol      ErrorKind = "protocol"
	KindData          ErrorKind = "data"
	KindInvalidConfig ErrorKind = "invalid_config"
)

// OpError wraps an underlying error with operation context and a kind.
// Status and Body are set for protocol errors only.
type OpError struct {
	Op     string
	Kind   ErrorKind
	Path   string // Optional: relevant file path
	Status int
	Body   string
	Err    error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// StatusOf returns the HTTP status carried by a protocol error.
func StatusOf(err error) (int, bool) {
	var oe *OpError
	if errors.As(err, &oe) && oe.Kind == KindProtocol {
		return oe.Status, true
	}
	return 0, false
}
