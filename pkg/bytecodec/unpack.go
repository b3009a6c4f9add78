package bytecodec

import (
	"github.com/picatz/strlib/pkg/base64"
	"golang.org/x/exp/slices"
)

// UnpackData decodes a base64 or base64url string and splits the bytes
// into chunks of arraySize. The last chunk may be shorter. A non-positive
// arraySize returns the decoded bytes as a single chunk.
func UnpackData(encoded string, arraySize int) [][]byte {
	b := base64.Decode(encoded)

	if arraySize <= 0 {
		return [][]byte{b}
	}

	chunks := make([][]byte, 0, (len(b)+arraySize-1)/arraySize)
	for i := 0; i < len(b); i += arraySize {
		chunks = append(chunks, b[i:min(i+arraySize, len(b))])
	}
	return chunks
}

// UnpackUint32s decodes a base64 or base64url string as a sequence of
// big-endian 32-bit words. A short final word is zero-extended on the
// right, as if the missing bytes were zero.
func UnpackUint32s(encoded string) []uint32 {
	chunks := UnpackData(encoded, 4)

	words := make([]uint32, len(chunks))
	for i, chunk := range chunks {
		words[i] = BytesToInt32(PadEnd(slices.Clip(chunk), 0, 4), 0)
	}
	return words
}
