package jwt

import (
	"strings"

	"github.com/picatz/strlib/pkg/base64"
	"github.com/picatz/strlib/pkg/bytecodec"
)

// Encoding selects how a token segment is encoded.
type Encoding int

const (
	// URL is base64url without padding, as required by RFC 7519.
	URL Encoding = iota

	// Standard is padded base64 with "+" and "/".
	Standard
)

func (e Encoding) String() string {
	switch e {
	case URL:
		return "base64url"
	case Standard:
		return "base64"
	default:
		return "unknown"
	}
}

func (e Encoding) encode(data []byte) string {
	if e == Standard {
		return base64.Encode(data)
	}
	return base64.EncodeURL(data)
}

// Config holds the segment encodings and signer used to assemble a token.
type Config struct {
	HeaderEncoding    Encoding
	PayloadEncoding   Encoding
	SignatureEncoding Encoding

	// Signer overrides the signer selected from the "alg" header
	// parameter when creating a token with New.
	Signer Signer
}

// Option is a functional option type used to configure token assembly.
type Option func(*Config)

// WithHeaderEncoding sets the encoding of the header segment.
func WithHeaderEncoding(enc Encoding) Option {
	return func(c *Config) {
		c.HeaderEncoding = enc
	}
}

// WithPayloadEncoding sets the encoding of the payload segment.
func WithPayloadEncoding(enc Encoding) Option {
	return func(c *Config) {
		c.PayloadEncoding = enc
	}
}

// WithSignatureEncoding sets the encoding of the signature segment.
func WithSignatureEncoding(enc Encoding) Option {
	return func(c *Config) {
		c.SignatureEncoding = enc
	}
}

// WithSigner sets the signer used by New, regardless of the "alg"
// header parameter.
func WithSigner(s Signer) Option {
	return func(c *Config) {
		c.Signer = s
	}
}

// WithDemoEncodings selects mixed segment encodings: a padded base64
// header and signature around a base64url payload. Such tokens are not
// RFC 7519 compliant; use them only to match existing demo output.
func WithDemoEncodings() Option {
	return func(c *Config) {
		c.HeaderEncoding = Standard
		c.PayloadEncoding = URL
		c.SignatureEncoding = Standard
	}
}

func newConfig(opts ...Option) *Config {
	config := &Config{
		HeaderEncoding:    URL,
		PayloadEncoding:   URL,
		SignatureEncoding: URL,
	}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// Assemble builds a token from header and payload text.
//
// Both texts are encoded from their UTF-8 bytes. The signer is called with
// the bytes of "<header>.<payload>" and the key, and its result becomes
// the third segment. All three segments are base64url encoded unless
// options select otherwise.
func Assemble(header, payload string, key []byte, signer Signer, opts ...Option) (string, error) {
	if signer == nil {
		return "", ErrNoSigner
	}

	config := newConfig(opts...)

	segments, _, err := assemble(header, payload, key, signer, config)
	if err != nil {
		return "", err
	}

	return strings.Join(segments[:], "."), nil
}

// assemble returns the three encoded segments and the raw signature.
func assemble(header, payload string, key []byte, signer Signer, config *Config) ([3]string, []byte, error) {
	h := config.HeaderEncoding.encode(utf8Bytes(header))
	p := config.PayloadEncoding.encode(utf8Bytes(payload))

	sig, err := signer.Sign([]byte(h+"."+p), key)
	if err != nil {
		return [3]string{}, nil, NewSigningError(err)
	}

	return [3]string{h, p, config.SignatureEncoding.encode(sig)}, sig, nil
}

// utf8Bytes returns the UTF-8 bytes of s by way of its byte-safe form.
func utf8Bytes(s string) []byte {
	return bytecodec.TextToBytes(bytecodec.EncodeUTF8Safe(s))
}
