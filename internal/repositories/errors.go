package repositories

import (
	"context"
	"encoding/json"
	"net"
	"net/url"

	"github.com/pkg/errors"
)

// Kind is the category of a failed archive fetch.
type Kind int

const (
	// KindUnexpected is the terminal fallback for anything not recognised below.
	KindUnexpected Kind = iota
	KindHTTPStatus
	KindConnection
	KindTimeout
	KindRequest
)

func (k Kind) String() string {
	switch k {
	case KindHTTPStatus:
		return "http_status"
	case KindConnection:
		return "connection"
	case KindTimeout:
		return "timeout"
	case KindRequest:
		return "request"
	default:
		return "unexpected"
	}
}

// FetchError is returned for every failed fetch.
type FetchError struct {
	Kind Kind
	Err  error

	// Set for KindHTTPStatus only. Body holds the error body when it is valid JSON.
	StatusCode int
	Body       json.RawMessage
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// HasJSONBody reports whether an HTTP status error came with a JSON body.
func (e *FetchError) HasJSONBody() bool {
	return len(e.Body) > 0
}

// Classify maps any error onto a FetchError. Errors that already are one pass through.
// Timeouts are checked before connection failures so a timed out DNS lookup counts
// as a timeout.
func Classify(err error) *FetchError {
	if err == nil {
		return nil
	}

	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}

	var (
		netErr net.Error
		dnsErr *net.DNSError
		opErr  *net.OpError
		urlErr *url.Error
	)

	kind := KindUnexpected
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		kind = KindTimeout
	case errors.As(err, &dnsErr), errors.As(err, &opErr):
		kind = KindConnection
	case errors.Is(err, context.Canceled), errors.As(err, &urlErr):
		kind = KindRequest
	}

	return &FetchError{Kind: kind, Err: err}
}

// transportError classifies a failure of the request itself. Whatever is not a
// timeout or a connection problem is still a request-layer failure here.
func transportError(err error) *FetchError {
	fe := Classify(err)
	if fe.Kind == KindUnexpected {
		fe.Kind = KindRequest
	}
	return fe
}
