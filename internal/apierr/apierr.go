package apierr

import (
	"fmt"
	"github.com/pkg/errors"
	"strings"
)

type Kind int

const (
	// KindTransport means no HTTP response was received.
	KindTransport Kind = iota + 1
	// KindFailure means the upstream answered, but not with a success.
	KindFailure
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Error is returned by both upstream clients so callers can treat them the same way.
type Error struct {
	Kind       Kind
	Service    string
	Method     string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s", e.Service, e.Method, e.URL)
	if e.Kind == KindFailure && e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
	}
	if e.Body != "" {
		fmt.Fprintf(&b, ": %s", e.Body)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Transport(service, method, url string, err error) *Error {
	return &Error{Kind: KindTransport, Service: service, Method: method, URL: url, Err: err}
}

func Failure(service, method, url string, statusCode int, body string) *Error {
	return &Error{Kind: KindFailure, Service: service, Method: method, URL: url, StatusCode: statusCode, Body: body}
}

func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func IsTransport(err error) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Kind == KindTransport
}

func IsFailure(err error) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Kind == KindFailure
}

// Describe renders err for a user-facing failure line.
func Describe(err error) string {
	apiErr, ok := As(err)
	if !ok {
		return err.Error()
	}
	switch apiErr.Kind {
	case KindTransport:
		return fmt.Sprintf("request failed: %v", apiErr.Err)
	case KindFailure:
		if apiErr.StatusCode == 0 {
			return apiErr.Body
		}
		if apiErr.Body == "" {
			return fmt.Sprintf("status %d", apiErr.StatusCode)
		}
		return fmt.Sprintf("status %d: %s", apiErr.StatusCode, apiErr.Body)
	}
	return apiErr.Error()
}
