// Package base64 implements the base64 encoding and its URL-safe variant
// as defined in RFC 4648, with a decoder that is deliberately forgiving.
//
// The encoder works on groups of three bytes, producing four symbols from
// the alphabet A-Z a-z 0-9 + / and "=" padding for a short final group.
// The URL-safe form (base64url) uses "-" and "_" instead of "+" and "/"
// and omits the padding, as required by JSON Web Tokens (RFC 7515).
//
// The decoder accepts both forms. It restores missing padding and silently
// drops characters outside the alphabet rather than returning an error.
// Callers that need strict validation should check the input themselves.
//
// http://www.rfc-editor.org/rfc/rfc4648#section-5
package base64
