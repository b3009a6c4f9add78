package bytecodec

import (
	"errors"
	"fmt"
)

// ErrMalformedUTF8 is returned by DecodeUTF8Safe when its input is not
// the byte-safe form of valid UTF-8 text.
var ErrMalformedUTF8 = errors.New("bytecodec: malformed UTF-8 byte string")

// UnsupportedTypeError is returned when a value cannot be classified as
// one of the supported Data variants.
type UnsupportedTypeError struct {
	TypeName string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("bytecodec: unsupported data type %s", e.TypeName)
}

// NewUnsupportedTypeError returns an UnsupportedTypeError naming the
// dynamic type of v.
func NewUnsupportedTypeError(v any) *UnsupportedTypeError {
	return &UnsupportedTypeError{TypeName: fmt.Sprintf("%T", v)}
}
