package bytecodec

import "github.com/picatz/strlib/internal/codeunit"

// Data is binary data in one of the supported input representations:
// Bytes, Ints, Uint16s, Uint32s or Text.
//
// The set of variants is closed; types outside this package cannot
// implement Data.
type Data interface {
	isData()
}

// Bytes is a byte sequence, used as is.
type Bytes []byte

// Ints is a plain numeric array. Each element is stored as its low byte.
type Ints []int

// Uint16s is a fixed-width numeric buffer. Each element is stored as its
// low byte.
type Uint16s []uint16

// Uint32s is a fixed-width numeric buffer. Each element is stored as its
// low byte.
type Uint32s []uint32

// Text is a string whose UTF-16 code units are stored as their low byte.
type Text string

func (Bytes) isData()   {}
func (Ints) isData()    {}
func (Uint16s) isData() {}
func (Uint32s) isData() {}
func (Text) isData()    {}

// ToSupportedByteSequence normalizes data to a byte slice.
//
// Numeric elements keep only their low eight bits. Text is converted one
// code unit at a time, not as UTF-8; use EncodeUTF8Safe first to get the
// UTF-8 bytes of arbitrary text.
func ToSupportedByteSequence(data Data) ([]byte, error) {
	switch d := data.(type) {
	case Bytes:
		return []byte(d), nil
	case Ints:
		return truncate(d), nil
	case Uint16s:
		return truncate(d), nil
	case Uint32s:
		return truncate(d), nil
	case Text:
		return codeunit.ToBytes(string(d)), nil
	default:
		return nil, NewUnsupportedTypeError(data)
	}
}

// DataOf classifies an untyped value into one of the Data variants.
//
// It accepts []byte, []int, []uint16, []uint32, string, and any value
// that already is Data. Anything else, including nil, results in an
// *UnsupportedTypeError.
func DataOf(v any) (Data, error) {
	switch t := v.(type) {
	case Data:
		return t, nil
	case []byte:
		return Bytes(t), nil
	case []int:
		return Ints(t), nil
	case []uint16:
		return Uint16s(t), nil
	case []uint32:
		return Uint32s(t), nil
	case string:
		return Text(t), nil
	}

	return nil, NewUnsupportedTypeError(v)
}

// ToSupported classifies v with DataOf and normalizes it with
// ToSupportedByteSequence.
func ToSupported(v any) ([]byte, error) {
	data, err := DataOf(v)
	if err != nil {
		return nil, err
	}

	return ToSupportedByteSequence(data)
}

// TextToBytes maps each UTF-16 code unit of s to its low byte.
func TextToBytes(s string) []byte {
	return codeunit.ToBytes(s)
}

// BytesToText maps each byte to one code unit of the returned string.
func BytesToText(b []byte) string {
	return codeunit.FromBytes(b)
}

func truncate[T int | uint16 | uint32](values []T) []byte {
	b := make([]byte, len(values))
	for i, v := range values {
		b[i] = byte(v)
	}
	return b
}
