package base64

import (
	"strings"

	"github.com/picatz/strlib/internal/codeunit"
)

// alphabet holds the 64 encoding symbols followed by the padding
// character, so the index of '=' is the padding sentinel 64.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/="

const (
	padding    = '='
	paddingIdx = 64
	invalidIdx = 0xff
)

// decodeMap maps an input byte to its index in alphabet, or invalidIdx.
var decodeMap = func() [256]byte {
	var m [256]byte
	for i := range m {
		m[i] = invalidIdx
	}
	for i := 0; i < len(alphabet); i++ {
		m[alphabet[i]] = byte(i)
	}
	return m
}()

// urlReplacer turns standard base64 symbols into their URL-safe
// counterparts and strips the padding.
var urlReplacer = strings.NewReplacer("+", "-", "/", "_", "=", "")

// stdReplacer reverses the URL-safe symbol substitution.
var stdReplacer = strings.NewReplacer("-", "+", "_", "/")

// EncodedLen returns the length of the encoding of n input bytes.
//
// For the URL-safe form the stripped padding is not counted.
func EncodedLen(n int, urlSafe bool) int {
	if !urlSafe {
		return (n + 2) / 3 * 4
	}
	return (n*8 + 5) / 6
}

// Encode returns the standard, padded base64 encoding of the given input.
//
// Every group of three bytes becomes four symbols. A final group of one
// byte is followed by "==", a final group of two bytes by "=".
func Encode(input []byte) string {
	if len(input) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(EncodedLen(len(input), false))

	for i := 0; i < len(input); i += 3 {
		remain := len(input) - i

		var c1, c2, c3 byte
		c1 = input[i]
		if remain > 1 {
			c2 = input[i+1]
		}
		if remain > 2 {
			c3 = input[i+2]
		}

		// [A7..A2][A1 A0 B7..B4][B3..B0 C7 C6][C5..C0]
		enc1 := c1 >> 2
		enc2 := (c1&0x3)<<4 | c2>>4
		enc3 := (c2&0xf)<<2 | c3>>6
		enc4 := c3 & 0x3f

		switch remain {
		case 1:
			enc3, enc4 = paddingIdx, paddingIdx
		case 2:
			enc4 = paddingIdx
		}

		b.WriteByte(alphabet[enc1])
		b.WriteByte(alphabet[enc2])
		b.WriteByte(alphabet[enc3])
		b.WriteByte(alphabet[enc4])
	}

	return b.String()
}

// EncodeURL returns the base64url encoding of the given input as defined
// in RFC 4648 Section 5: "+" and "/" are replaced with "-" and "_", and
// all padding is removed.
func EncodeURL(input []byte) string {
	return urlReplacer.Replace(Encode(input))
}

// EncodeString encodes text by mapping each of its UTF-16 code units to
// a single byte first. This is not a UTF-8 encoding; text containing
// code units above 0xFF loses their high bits.
func EncodeString(text string, urlSafe bool) string {
	data := codeunit.ToBytes(text)
	if urlSafe {
		return EncodeURL(data)
	}
	return Encode(data)
}
