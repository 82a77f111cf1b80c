package rtsp

import (
	"errors"
	"fmt"
)

// ErrMalformedSetup indicates a SETUP body that matches neither the
// sender-info shape nor the streams shape, or matches one structurally but
// is missing a required field. Callers reject the request; no session or
// stream state is created.
var ErrMalformedSetup = errors.New("rtsp: malformed setup body")

var (
	errMissingField = errors.New("missing required field")
	errWrongType    = errors.New("unexpected value type")
)

// UnknownStreamTypeError indicates a stream envelope whose type code is not
// one of the protocol's fixed stream-type codes. The whole streams request
// is rejected; no partial stream set is admitted.
type UnknownStreamTypeError struct {
	Code uint32
}

func (e *UnknownStreamTypeError) Error() string {
	return fmt.Sprintf("rtsp: unknown stream type %d", e.Code)
}

// FieldError records which dictionary field failed to decode. It wraps the
// underlying cause so callers can distinguish absent fields from mistyped
// ones with errors.Is.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("rtsp: field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
