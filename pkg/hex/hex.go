// Package hex converts byte sequences to and from uppercase hexadecimal
// text, optionally grouped into four byte blocks for display.
package hex

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Separator is inserted between four byte groups when encoding with
// grouping enabled, and removed before decoding.
const Separator = "-"

// groupSize is the number of bytes between separators.
const groupSize = 4

const digits = "0123456789ABCDEF"

// ErrInvalidHex is returned when the input contains a character that is
// not a hexadecimal digit or separator.
var ErrInvalidHex = errors.New("hex: invalid hexadecimal input")

// Encode returns two uppercase hexadecimal digits for every byte. When
// separate is true, a "-" is written before every fourth byte, except the
// first one.
//
//	Encode([]byte{0, 1, 255, 16, 2}, true) == "0001FF10-02"
func Encode(input []byte, separate bool) string {
	size := len(input) * 2
	if separate && len(input) > 0 {
		size += (len(input) - 1) / groupSize
	}

	var b strings.Builder
	b.Grow(size)

	for i, c := range input {
		if separate && i%groupSize == 0 && i != 0 {
			b.WriteString(Separator)
		}
		b.WriteByte(digits[c>>4])
		b.WriteByte(digits[c&0x0f])
	}

	return b.String()
}

// Decode strips all separators and parses the remaining digits two at a
// time. Both upper and lower case digits are accepted.
//
// A trailing lone digit does not form a byte and is silently dropped, so
// "ABC" decodes to a single byte 0xAB.
func Decode(input string) ([]byte, error) {
	input = strings.ReplaceAll(input, Separator, "")

	// Drop the incomplete final pair, if any.
	input = input[:len(input)&^1]

	b, err := hex.DecodeString(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}

	return b, nil
}
