package bytecodec

import (
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// XOR returns the element-wise exclusive or of a and b.
//
// The result has the length of the shorter input; the extra elements of
// the longer one are ignored. Pad the inputs first when the full length
// is needed.
func XOR(a, b []byte) []byte {
	n := min(len(a), len(b))

	res := make([]byte, n)
	for i := 0; i < n; i++ {
		res[i] = a[i] ^ b[i]
	}
	return res
}

// FilledVector returns a slice of the given length with every element set
// to fill.
func FilledVector[T any](length int, fill T) []T {
	res := make([]T, length)
	for i := range res {
		res[i] = fill
	}
	return res
}

// PadEnd appends value to seq until it is finalLength long. A sequence
// already at or past finalLength is returned unchanged.
func PadEnd[T any](seq []T, value T, finalLength int) []T {
	if len(seq) >= finalLength {
		return seq
	}
	return append(seq, FilledVector(finalLength-len(seq), value)...)
}

// PadFront prepends value to seq until it is finalLength long. A sequence
// already at or past finalLength is returned unchanged.
func PadFront[T any](seq []T, value T, finalLength int) []T {
	if len(seq) >= finalLength {
		return seq
	}
	return slices.Insert(seq, 0, FilledVector(finalLength-len(seq), value)...)
}

// SequencesEqual reports whether a and b have the same length and equal
// elements at every index.
func SequencesEqual[T comparable](a, b []T) bool {
	return slices.Equal(a, b)
}

// Number is any type that can carry a byte value.
type Number interface {
	constraints.Integer | constraints.Float
}

// IsValidByteSequence reports whether seq is a non-nil slice whose
// elements are all integers in the range 0-255. NaN, fractional and out
// of range values make the sequence invalid.
func IsValidByteSequence[T Number](seq []T) bool {
	if seq == nil {
		return false
	}

	for _, v := range seq {
		f := float64(v)
		if math.IsNaN(f) || f < 0 || f > 255 || f != math.Trunc(f) {
			return false
		}
	}

	return true
}

// ClonePlainObject returns a shallow copy of m. Values are copied as is;
// nested maps and slices are shared with the original.
func ClonePlainObject[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return map[K]V{}
	}
	return maps.Clone(m)
}
