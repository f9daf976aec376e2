package provider

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/heartmarshall/define/internal/domain"
)

// Failure kinds. Every error returned by a dictionary client matches
// exactly one of these with errors.Is.
var (
	ErrTransport = errors.New("transport error")
	ErrUpstream  = errors.New("upstream error")
	ErrDecode    = errors.New("decode error")
)

var (
	// ErrUnsupported is returned for operations a provider does not offer.
	// No request is made.
	ErrUnsupported = errors.New("operation not supported by provider")
	// ErrNoPhonetics is returned when a word has no IPA transcriptions.
	ErrNoPhonetics = errors.New("no IPA phonetics")
)

// TransportError means the request never produced an HTTP response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() []error { return []error{ErrTransport, e.Err} }

// StatusError means the service answered with a non-2xx status.
// Authorization failures are not treated specially.
type StatusError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *StatusError) Unwrap() error { return ErrUpstream }

// Is lets callers test a 404 against domain.ErrNotFound.
func (e *StatusError) Is(target error) bool {
	return target == domain.ErrNotFound && e.StatusCode == http.StatusNotFound
}

// DecodeError means the body did not match the expected JSON shape.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode json: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() []error { return []error{ErrDecode, e.Err} }
