// Package jwt assembles JSON Web Tokens from a header, a payload and a
// signing key.
//
// A token is three segments separated by dots: the encoded header, the
// encoded payload, and the encoded signature of "header.payload". The
// signature is produced by a Signer, which by default is the HMAC SHA-2
// function named by the "alg" header parameter.
//
// This package only builds tokens. It does not parse or verify them.
package jwt
