package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"syscall"
	"time"

	"github.com/rickgao/btc-ticker/internal/api"
)

// Kind classifies a fetch failure.
type Kind int

const (
	KindUnexpected Kind = iota
	KindTimeout
	KindConnection
	KindHTTP
	KindRequest
	KindMalformedResponse
	KindMissingField
	KindInvalidType
	KindConversion
	KindImplausibleValue
)

var kindNames = map[Kind]string{
	KindUnexpected:        "unexpected_error",
	KindTimeout:           "timeout",
	KindConnection:        "connection_error",
	KindHTTP:              "http_error",
	KindRequest:           "request_error",
	KindMalformedResponse: "malformed_response",
	KindMissingField:      "missing_field",
	KindInvalidType:       "invalid_type",
	KindConversion:        "conversion_error",
	KindImplausibleValue:  "implausible_value",
}

// String returns a stable snake_case label, suitable for logs and metric labels.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Kinds returns every failure kind, in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindUnexpected, KindTimeout, KindConnection, KindHTTP, KindRequest,
		KindMalformedResponse, KindMissingField, KindInvalidType, KindConversion,
		KindImplausibleValue,
	}
}

// Error is a classified fetch failure.
type Error struct {
	Kind   Kind
	Field  string  // KindMissingField: the absent key
	Status int     // KindHTTP: response status code
	Reason string  // KindHTTP: status text
	Value  float64 // KindImplausibleValue: the rejected value
	Detail string  // human-readable context for the remaining kinds
	Err    error   // underlying cause, if any
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTimeout:
		return "request timed out: " + e.Detail
	case KindConnection:
		return "connection error: " + e.Detail
	case KindHTTP:
		return fmt.Sprintf("http error %d: %s", e.Status, e.Reason)
	case KindRequest:
		return "request error: " + e.Detail
	case KindMalformedResponse:
		return "malformed response: " + e.Detail
	case KindMissingField:
		return fmt.Sprintf("missing field %q in response", e.Field)
	case KindInvalidType:
		return "invalid type: " + e.Detail
	case KindConversion:
		return "conversion error: " + e.Detail
	case KindImplausibleValue:
		return fmt.Sprintf("implausible value %v: %s", e.Value, e.Detail)
	default:
		return "unexpected error: " + e.Detail
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of a fetch error, or KindUnexpected if err is not a *Error.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnexpected
}

// classifyTransport maps an error from the API client onto a Kind.
// timeout is the per-call bound, used only for the diagnostic text.
func classifyTransport(err error, timeout time.Duration) *Error {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &Error{Kind: KindHTTP, Status: apiErr.StatusCode, Reason: apiErr.Message, Err: err}
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &Error{Kind: KindTimeout, Detail: fmt.Sprintf("no response within %s", timeout), Err: err}
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	if (errors.As(err, &opErr) && opErr.Op == "dial") ||
		errors.As(err, &dnsErr) ||
		errors.Is(err, syscall.ECONNREFUSED) {
		return &Error{Kind: KindConnection, Detail: err.Error(), Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) || errors.Is(err, context.Canceled) {
		return &Error{Kind: KindRequest, Detail: err.Error(), Err: err}
	}

	return &Error{Kind: KindUnexpected, Detail: err.Error(), Err: err}
}
