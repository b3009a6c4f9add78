package jwa

import (
	"crypto"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHMACHash(t *testing.T) {
	tests := []struct {
		Name string
		Alg  Algorithm
		Hash crypto.Hash
	}{
		{
			Name: "HS256",
			Alg:  HS256,
			Hash: crypto.SHA256,
		},
		{
			Name: "HS384",
			Alg:  HS384,
			Hash: crypto.SHA384,
		},
		{
			Name: "HS512",
			Alg:  HS512,
			Hash: crypto.SHA512,
		},
		{
			Name: "none",
			Alg:  None,
		},
		{
			Name: "unknown",
			Alg:  "RS256",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			h, ok := HMACHash(test.Alg)
			require.Equal(t, test.Hash != 0, ok)
			require.Equal(t, test.Hash, h)
		})
	}
}

func TestSupported(t *testing.T) {
	algs := Supported()
	require.Contains(t, algs, HS256)
	require.Contains(t, algs, None)
	require.Len(t, algs, 4)
}
