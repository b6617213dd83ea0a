package webmate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Error kinds. Every error returned by the transport or the facades matches
// exactly one of them via errors.Is.
var (
	// ErrNoResponse means the transport got no response at all, e.g. the
	// connection could not be established.
	ErrNoResponse = errors.New("got no response")

	// ErrMalformedResponse means a response body could not be parsed or
	// lacked required fields.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrUnexpectedStatus means the API answered with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrInvalidRequest means the request could not be built and nothing was
	// sent.
	ErrInvalidRequest = errors.New("invalid request")
)

// Error is the error type returned by [Client]. Kind is one of the Err*
// sentinels above.
type Error struct {
	Kind       error
	Method     string
	Path       string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Kind.Error())

	if e.Method != "" {
		fmt.Fprintf(&sb, " (%s %s)", e.Method, e.Path)
	}

	if e.StatusCode != 0 {
		fmt.Fprintf(&sb, " [%d]", e.StatusCode)
	}

	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	} else if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}

	return sb.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// errorMessageFromBody extracts a human readable message from an error
// response body. The API reports errors as {"error": "..."}; anything else is
// returned verbatim.
func errorMessageFromBody(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return "(empty error body)"
	}

	if gjson.Valid(trimmed) {
		if msg := gjson.Get(trimmed, "error"); msg.Type == gjson.String && msg.Str != "" {
			return msg.Str
		}
	}

	return trimmed
}
