package jwa

import "crypto"

// https://datatracker.ietf.org/doc/html/rfc7518#section-3.1
type Algorithm = string

// HMAC with SHA-2 Functions
//
// These algorithms are used to construct a MAC using a shared secret
// and the Hash-based Message Authentication Code (HMAC) construction
// [RFC2104] employing SHA-2 [SHS] hash functions.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-3.2
const (
	HS256 Algorithm = "HS256"
	HS384 Algorithm = "HS384"
	HS512 Algorithm = "HS512"
)

// No signature or MAC performed (unprotected JWS). This algorithm is
// intended to be used to create a JWS that is not integrity protected.
//
// # Warning
//
// The use of this algorithm is considered dangerous, it's only
// implemented for completeness.
//
// https://datatracker.ietf.org/doc/html/rfc7518#section-3.6
const None Algorithm = "none"

// hmacHash maps the HMAC algorithms to their hash function.
var hmacHash = map[Algorithm]crypto.Hash{
	HS256: crypto.SHA256,
	HS384: crypto.SHA384,
	HS512: crypto.SHA512,
}

// HMACHash returns the SHA-2 hash used by the given HMAC algorithm, and
// false if alg is not an HMAC algorithm.
func HMACHash(alg Algorithm) (crypto.Hash, bool) {
	h, ok := hmacHash[alg]
	return h, ok
}

// Supported returns the algorithms tokens can be signed with.
func Supported() []Algorithm {
	return []Algorithm{HS256, HS384, HS512, None}
}
