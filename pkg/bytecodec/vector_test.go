package bytecodec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXOR(t *testing.T) {
	tests := []struct {
		Name   string
		A, B   []byte
		Output []byte
	}{
		{Name: "equal length", A: []byte{0xff, 0x0f}, B: []byte{0x0f, 0x0f}, Output: []byte{0xf0, 0x00}},
		{Name: "longer a truncated", A: []byte{1, 2, 3}, B: []byte{9, 9}, Output: []byte{8, 11}},
		{Name: "longer b truncated", A: []byte{9}, B: []byte{1, 2, 3}, Output: []byte{8}},
		{Name: "empty operand", A: []byte{1, 2}, B: nil, Output: []byte{}},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			require.Equal(t, test.Output, XOR(test.A, test.B))
		})
	}
}

func TestXORSelfInverse(t *testing.T) {
	a := []byte("attack at dawn")
	key := FilledVector(len(a), byte(0x5a))

	require.Equal(t, a, XOR(XOR(a, key), key))
}

func TestFilledVector(t *testing.T) {
	require.Equal(t, []int{0, 0, 0}, FilledVector(3, 0))
	require.Equal(t, []byte{7, 7}, FilledVector(2, byte(7)))
	require.Empty(t, FilledVector(0, 1))
}

func TestPadEnd(t *testing.T) {
	require.Equal(t, []int{1, 2, 3, 0, 0}, PadEnd([]int{1, 2, 3}, 0, 5))
	require.Equal(t, []int{1, 2, 3}, PadEnd([]int{1, 2, 3}, 0, 3))
	require.Equal(t, []int{1, 2, 3}, PadEnd([]int{1, 2, 3}, 0, 2))
	require.Equal(t, []byte{9, 9}, PadEnd(nil, byte(9), 2))
}

func TestPadFront(t *testing.T) {
	require.Equal(t, []int{0, 0, 1, 2, 3}, PadFront([]int{1, 2, 3}, 0, 5))
	require.Equal(t, []int{1, 2, 3}, PadFront([]int{1, 2, 3}, 0, 3))
	require.Equal(t, []int{1, 2, 3}, PadFront([]int{1, 2, 3}, 0, 0))
	require.Equal(t, []byte{9, 9}, PadFront(nil, byte(9), 2))
}

func TestSequencesEqual(t *testing.T) {
	require.True(t, SequencesEqual([]int{1, 2, 3}, []int{1, 2, 3}))
	require.True(t, SequencesEqual([]byte{}, nil))
	require.False(t, SequencesEqual([]int{1, 2, 3}, []int{1, 2}))
	require.False(t, SequencesEqual([]int{1, 2}, []int{1, 2, 3}))
	require.False(t, SequencesEqual([]int{1, 2, 3}, []int{1, 2, 4}))
}

func TestIsValidByteSequence(t *testing.T) {
	require.True(t, IsValidByteSequence([]int{0, 255, 128}))
	require.True(t, IsValidByteSequence([]int{}))
	require.True(t, IsValidByteSequence([]byte{0, 255}))
	require.True(t, IsValidByteSequence([]float64{0, 1, 255}))

	require.False(t, IsValidByteSequence([]int{0, 256}))
	require.False(t, IsValidByteSequence([]int{-1}))
	require.False(t, IsValidByteSequence([]int(nil)))
	require.False(t, IsValidByteSequence([]uint16{1, 1000}))
	require.False(t, IsValidByteSequence([]float64{math.NaN()}))
	require.False(t, IsValidByteSequence([]float64{1.5}))
	require.False(t, IsValidByteSequence([]float64{math.Inf(1)}))
}

func TestClonePlainObject(t *testing.T) {
	nested := []string{"a"}
	original := map[string]any{
		"alg":    "HS256",
		"nested": nested,
	}

	clone := ClonePlainObject(original)
	require.Equal(t, original, clone)

	clone["alg"] = "none"
	require.Equal(t, "HS256", original["alg"])

	// Shallow: nested values are shared.
	clone["nested"].([]string)[0] = "b"
	require.Equal(t, "b", nested[0])

	require.NotNil(t, ClonePlainObject[string, int](nil))
	require.Empty(t, ClonePlainObject[string, int](nil))
}
