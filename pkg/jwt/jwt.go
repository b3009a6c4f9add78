package jwt

import (
	"fmt"
	"strings"

	"github.com/picatz/strlib/pkg/bytecodec"
	"github.com/picatz/strlib/pkg/header"
)

// Type "JWT" is the media type used by JSON Web Token (JWT).
//
// https://www.rfc-editor.org/rfc/rfc7515.html#section-3.3
const Type = header.TypeJWT

// Token is a signed JSON Web Token.
//
// JWTs contain three parts, separated by dots (".") which are:
//
//  1. Header
//  2. Claims (Payload)
//  3. Signature
//
// https://datatracker.ietf.org/doc/html/rfc7519#section-1
type Token struct {
	// Header is the set of parameters that are used to describe
	// the cryptographic operations applied to the JWT claims set.
	Header header.Parameters

	// Claims is the set of claims that are asserted by the JWT.
	//
	// This is sometimes referred to as the "payload".
	Claims ClaimsSet

	// Signature is the MAC value computed over the encoded header
	// and claims.
	Signature []byte

	segments [3]string
}

// New creates a signed Token from the given header parameters and claims.
// If this fails for any reason, an error is returned with a nil token.
//
// The "typ" parameter is set to "JWT" when missing. The signer is chosen
// from the "alg" parameter (see SignerFor) unless WithSigner is given.
//
// The given maps are not modified; the token holds shallow copies.
func New(params header.Parameters, claims ClaimsSet, key []byte, opts ...Option) (*Token, error) {
	// Given params set cannot be empty.
	if len(params) == 0 {
		return nil, ErrEmptyHeader
	}

	// Given claims set cannot be empty.
	if len(claims) == 0 {
		return nil, ErrNoClaimSet
	}

	params = bytecodec.ClonePlainObject(params)
	claims = bytecodec.ClonePlainObject(claims)

	// Verify or otherwise handle registered claim types nicely.
	if err := claims.normalize(); err != nil {
		return nil, err
	}

	// Ensure the "typ" header parameter is set to "JWT", as it is required.
	if _, ok := params[header.Type]; !ok {
		params[header.Type] = Type
	} else if params[header.Type] != Type {
		return nil, fmt.Errorf("header type %q is not supported", params[header.Type])
	}

	config := newConfig(opts...)

	signer := config.Signer
	if signer == nil {
		alg, err := params.Algorithm()
		if err != nil {
			return nil, fmt.Errorf("missing JWT header algorithm: %w", err)
		}

		signer, err = SignerFor(alg)
		if err != nil {
			return nil, err
		}
	}

	headerText, err := params.Text()
	if err != nil {
		return nil, err
	}

	claimsText, err := claims.Text()
	if err != nil {
		return nil, err
	}

	segments, sig, err := assemble(headerText, claimsText, key, signer, config)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Token{
		Header:    params,
		Claims:    claims,
		Signature: sig,
		segments:  segments,
	}, nil
}

// String returns the compact serialization of the token: its three
// encoded segments separated by periods.
func (t *Token) String() string {
	return strings.Join(t.segments[:], ".")
}

// Segments returns the encoded header, payload and signature segments.
func (t *Token) Segments() [3]string {
	return t.segments
}

// SigningInput returns the bytes the signature was computed over.
func (t *Token) SigningInput() []byte {
	return []byte(t.segments[0] + "." + t.segments[1])
}
