package jwt

import (
	"crypto"
	"crypto/hmac"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"errors"
	"fmt"

	"github.com/picatz/strlib/pkg/jwa"
)

// Signer computes the signature of a token's signing input, the bytes of
// "header.payload", with the given key.
type Signer interface {
	Sign(message, key []byte) ([]byte, error)
}

// SignerFunc adapts an ordinary function to the Signer interface.
type SignerFunc func(message, key []byte) ([]byte, error)

func (f SignerFunc) Sign(message, key []byte) ([]byte, error) {
	return f(message, key)
}

// HMACSigner returns a Signer computing the HMAC of the message using the
// given hash function.
func HMACSigner(hash crypto.Hash) Signer {
	return SignerFunc(func(message, key []byte) ([]byte, error) {
		// Ensure the secret key is not empty.
		if len(key) == 0 {
			return nil, errors.New("no secret key provided, cannot complete operation")
		}

		// Ensure the hash is available.
		if !hash.Available() {
			return nil, fmt.Errorf("requested hash %v is not available", hash)
		}

		h := hmac.New(hash.New, key)
		h.Write(message)

		return h.Sum(nil), nil
	})
}

// noneSigner produces the empty signature of unsecured tokens.
var noneSigner = SignerFunc(func(message, key []byte) ([]byte, error) {
	return []byte{}, nil
})

// SignerFor returns the Signer for the given algorithm name.
func SignerFor(alg jwa.Algorithm) (Signer, error) {
	if alg == jwa.None {
		return noneSigner, nil
	}

	hash, ok := jwa.HMACHash(alg)
	if !ok {
		return nil, &ErrUnsupportedAlgorithm{Algorithm: alg}
	}

	return HMACSigner(hash), nil
}
