package provider

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/heartmarshall/define/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestErrorKinds_AreDistinct(t *testing.T) {
	t.Parallel()

	errs := []error{
		&TransportError{Op: "definitions", Err: io.ErrUnexpectedEOF},
		&StatusError{Op: "definitions", StatusCode: 500},
		&DecodeError{Op: "definitions", Err: io.ErrUnexpectedEOF},
	}
	kinds := []error{ErrTransport, ErrUpstream, ErrDecode}

	for i, err := range errs {
		for j, kind := range kinds {
			assert.Equal(t, i == j, errors.Is(err, kind), "error %d vs kind %d", i, j)
		}
	}
}

func TestTransportError_UnwrapsCause(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("lookup: %w", &TransportError{Op: "random word", Err: io.ErrUnexpectedEOF})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestStatusError_Message(t *testing.T) {
	t.Parallel()

	err := &StatusError{Op: "definitions", StatusCode: 401, Message: "Invalid API key"}
	assert.Equal(t, "definitions: unexpected status 401: Invalid API key", err.Error())

	bare := &StatusError{Op: "definitions", StatusCode: 502}
	assert.Equal(t, "definitions: unexpected status 502", bare.Error())
}

func TestStatusError_NotFound(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, &StatusError{StatusCode: 404}, domain.ErrNotFound)
	assert.NotErrorIs(t, &StatusError{StatusCode: 403}, domain.ErrNotFound)
	assert.NotErrorIs(t, &StatusError{StatusCode: 403}, ErrTransport)
}
