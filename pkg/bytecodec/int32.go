package bytecodec

import "encoding/binary"

// Int32ToBytes returns the low 32 bits of n as four big-endian bytes.
// Negative values wrap around, so -1 becomes FF FF FF FF.
func Int32ToBytes(n int64) []byte {
	return binary.BigEndian.AppendUint32(make([]byte, 0, 4), uint32(n))
}

// BytesToInt32 reads four big-endian bytes starting at offset.
//
// The caller must ensure offset+4 <= len(b); otherwise BytesToInt32
// panics with an index out of range.
func BytesToInt32(b []byte, offset int) uint32 {
	return uint32(b[offset])<<24 |
		uint32(b[offset+1])<<16 |
		uint32(b[offset+2])<<8 |
		uint32(b[offset+3])
}

// Int32ArrayToBytes concatenates Int32ToBytes of every element, in order.
func Int32ArrayToBytes(ints []int64) []byte {
	out := make([]byte, 0, len(ints)*4)
	for _, n := range ints {
		out = binary.BigEndian.AppendUint32(out, uint32(n))
	}
	return out
}
