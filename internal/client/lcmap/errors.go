package lcmap

import (
	"errors"
	"fmt"
	"net/http"
)

// Static error definitions for better error handling.
var (
	// ErrUnsupportedVerb indicates that a verb has no HTTP method mapping.
	ErrUnsupportedVerb = errors.New("unsupported verb")
	// ErrUnhandledReturnMode indicates that a return mode is not one of raw, body, result or errors.
	ErrUnhandledReturnMode = errors.New("unhandled return mode")
	// ErrMalformedJSON indicates that a response body could not be decoded as JSON.
	ErrMalformedJSON = errors.New("malformed JSON in response body")
	// ErrMissingLink indicates that a result carries no result.link.href to follow.
	ErrMissingLink = errors.New("result has no link to follow")
	// ErrOddKeyValues indicates that a key/value list has a key without a value.
	ErrOddKeyValues = errors.New("odd number of key/value arguments")
	// ErrNonStringKey indicates that a key/value list has a key that is not a string.
	ErrNonStringKey = errors.New("key/value argument key is not a string")
	// ErrNilResponse indicates that the transport returned neither a response nor an error.
	ErrNilResponse = errors.New("transport returned no response")
	// ErrConflictingBody indicates that more than one of body, json-body and form-params was given.
	ErrConflictingBody = errors.New("only one of body, json-body and form-params may be set")
	// ErrInvalidRequestField indicates that a request field has a type the transport cannot use.
	ErrInvalidRequestField = errors.New("invalid request field")
)

// StatusError is a transport failure carrying the HTTP status of the response.
type StatusError struct {
	// Status is the HTTP status code.
	Status int `json:"status"`
	// Headers are the response headers.
	Headers http.Header `json:"headers,omitempty"`
	// Body is the response body.
	Body string `json:"body,omitempty"`
	// Message describes the failure.
	Message string `json:"message,omitempty"`
}

func (e *StatusError) Error() string {
	if e == nil {
		return "<nil>"
	}

	text := fmt.Sprintf("http %d", e.Status)
	if statusText := http.StatusText(e.Status); statusText != "" {
		text += " " + statusText
	}

	if e.Message != "" {
		text += ": " + e.Message
	}

	return text
}

// AsStatusError extracts *StatusError from err.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}

	return nil, false
}

// IsStatus reports whether err is a *StatusError with the given status.
func IsStatus(err error, status int) bool {
	statusErr, ok := AsStatusError(err)

	return ok && statusErr.Status == status
}
