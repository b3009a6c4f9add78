package bytecodec

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// EncodeUTF8Safe returns a string with one rune per byte of the UTF-8
// encoding of text, each rune in the range 0-255. The result can be
// passed through single byte oriented encoders, such as
// base64.EncodeString, without losing information.
//
//	EncodeUTF8Safe("ȧ") == "È§"
func EncodeUTF8Safe(text string) string {
	// Every byte is a valid ISO-8859-1 character, so decoding can not fail.
	s, _ := charmap.ISO8859_1.NewDecoder().String(text)
	return s
}

// DecodeUTF8Safe is the inverse of EncodeUTF8Safe. It fails with
// ErrMalformedUTF8 if text contains a rune above 255, or if the bytes it
// represents are not valid UTF-8.
func DecodeUTF8Safe(text string) (string, error) {
	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedUTF8, err)
	}

	if !utf8.Valid(b) {
		return "", ErrMalformedUTF8
	}

	return string(b), nil
}
