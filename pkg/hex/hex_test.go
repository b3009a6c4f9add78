package hex

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		Name     string
		Input    []byte
		Separate bool
		Output   string
	}{
		{
			Name:   "empty",
			Input:  []byte{},
			Output: "",
		},
		{
			Name:     "empty separated",
			Input:    []byte{},
			Separate: true,
			Output:   "",
		},
		{
			Name:   "zero padded uppercase",
			Input:  []byte{0, 1, 255, 16},
			Output: "0001FF10",
		},
		{
			Name:     "exactly one group",
			Input:    []byte{0, 1, 255, 16},
			Separate: true,
			Output:   "0001FF10",
		},
		{
			Name:     "separator before fifth byte",
			Input:    []byte{0, 1, 255, 16, 2},
			Separate: true,
			Output:   "0001FF10-02",
		},
		{
			Name:     "three groups",
			Input:    []byte{0xde, 0xad, 0xbe, 0xef, 0xca, 0xfe, 0xba, 0xbe, 0x01},
			Separate: true,
			Output:   "DEADBEEF-CAFEBABE-01",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			require.Equal(t, test.Output, Encode(test.Input, test.Separate))
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		Name   string
		Input  string
		Output []byte
	}{
		{
			Name:   "empty",
			Input:  "",
			Output: []byte{},
		},
		{
			Name:   "uppercase",
			Input:  "0001FF10",
			Output: []byte{0, 1, 255, 16},
		},
		{
			Name:   "lowercase",
			Input:  "deadbeef",
			Output: []byte{0xde, 0xad, 0xbe, 0xef},
		},
		{
			Name:   "separators stripped",
			Input:  "0001FF10-02",
			Output: []byte{0, 1, 255, 16, 2},
		},
		{
			Name:   "separators anywhere",
			Input:  "-00-01-",
			Output: []byte{0, 1},
		},
		{
			Name:   "trailing digit dropped",
			Input:  "ABC",
			Output: []byte{0xab},
		},
		{
			Name:   "lone digit dropped",
			Input:  "F",
			Output: []byte{},
		},
		{
			Name:   "trailing digit dropped after separator removal",
			Input:  "0102-0",
			Output: []byte{1, 2},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			b, err := Decode(test.Input)
			require.NoError(t, err)
			require.Equal(t, test.Output, b)
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, input := range []string{"zz", "0G", "01 2"} {
		t.Run(input, func(t *testing.T) {
			b, err := Decode(input)
			require.ErrorIs(t, err, ErrInvalidHex)
			require.Nil(t, b)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for n := 0; n < 40; n++ {
		input := make([]byte, n)
		_, err := rand.Read(input)
		require.NoError(t, err)

		for _, separate := range []bool{false, true} {
			b, err := Decode(Encode(input, separate))
			require.NoError(t, err)
			require.Equal(t, input, b)
		}
	}
}
