package base64

import (
	"strings"

	"github.com/picatz/strlib/internal/codeunit"
)

// Decode returns the bytes encoded by the given base64 or base64url input.
//
// Decoding is lenient and never fails:
//   - URL-safe symbols are mapped back to "+" and "/"
//   - missing padding is restored
//   - characters outside the base64 alphabet are discarded
//
// Use Normalize to see the exact string that is decoded.
func Decode(input string) []byte {
	input = Normalize(input)

	out := make([]byte, 0, len(input)/4*3)

	for i := 0; i < len(input); i += 4 {
		var enc [4]byte
		for j := range enc {
			// A group cut short by sanitization is treated as padded.
			if i+j < len(input) {
				enc[j] = decodeMap[input[i+j]]
			} else {
				enc[j] = paddingIdx
			}
		}

		// Without two data symbols there is no complete byte to emit.
		if enc[0] == paddingIdx || enc[1] == paddingIdx {
			continue
		}

		out = append(out, enc[0]<<2|enc[1]>>4)

		if enc[2] == paddingIdx {
			continue
		}
		out = append(out, (enc[1]&0xf)<<4|enc[2]>>2)

		if enc[3] == paddingIdx {
			continue
		}
		out = append(out, (enc[2]&0x3)<<6|enc[3])
	}

	return out
}

// DecodeToString decodes the input with Decode and maps every resulting
// byte to a single code unit of the returned string.
func DecodeToString(input string) string {
	return codeunit.FromBytes(Decode(input))
}

// Normalize prepares a base64 or base64url string for decoding. The
// URL-safe substitution is reversed, the string is right-padded with "="
// to a multiple of four, then every character outside the base64
// alphabet is removed.
//
// Because invalid characters are removed after padding, the result is not
// guaranteed to be a multiple of four long.
func Normalize(input string) string {
	input = stdReplacer.Replace(input)

	if padLen := len(input) % 4; padLen > 0 {
		var b strings.Builder
		b.Grow(len(input) + (4 - padLen))
		b.WriteString(input)
		for i := padLen; i < 4; i++ {
			b.WriteByte(padding)
		}
		input = b.String()
	}

	return strings.Map(func(r rune) rune {
		if r < 0x80 && decodeMap[r] != invalidIdx {
			return r
		}
		return -1
	}, input)
}
