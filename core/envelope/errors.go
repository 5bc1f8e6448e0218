package envelope

import (
	"errors"
	"fmt"
)

// ErrMalformedEnvelope matches every [*DecodeError] with [errors.Is], so
// callers can tell "the model's output was not decodable" apart from "the
// model suggested nothing".
var ErrMalformedEnvelope = errors.New("answerkit: malformed envelope")

// Causes carried by [DecodeError.Err].
var (
	ErrNotEnvelope  = errors.New("payload is neither a JSON array nor a JSON object")
	ErrElementType  = errors.New("element is not a JSON object")
	ErrMissingField = errors.New("required field is missing")
	ErrFieldType    = errors.New("field has the wrong type")
)

// DecodeError reports why an answer could not be turned into snippets.
// Index is the position of the offending array element, or -1 when the
// payload as a whole could not be decoded. Field names the element field at
// fault, if any.
type DecodeError struct {
	Index   int
	Field   string
	Payload string
	Err     error
}

func (e *DecodeError) Error() string {
	switch {
	case e.Index < 0:
		return fmt.Sprintf("malformed envelope: %v", e.Err)
	case e.Field == "":
		return fmt.Sprintf("malformed envelope: element %d: %v", e.Index, e.Err)
	default:
		return fmt.Sprintf("malformed envelope: element %d: field %q: %v", e.Index, e.Field, e.Err)
	}
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is [ErrMalformedEnvelope].
func (e *DecodeError) Is(target error) bool {
	return target == ErrMalformedEnvelope
}
