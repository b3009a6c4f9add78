// Package strlib converts binary data between its common text forms and
// uses them to assemble JSON Web Tokens.
//
// Packages:
//   - base64: base64 and base64url encoding with a lenient decoder
//   - hex: uppercase hexadecimal encoding with display grouping
//   - bytecodec: type normalization, UTF-8 byte-safe strings, 32-bit
//     integers and array helpers
//   - jwt: token assembly over a pluggable signer
//
// Related RFCs:
//   - RFC4648 https://datatracker.ietf.org/doc/html/rfc4648 Base16, Base32, and Base64 Data Encodings
//   - RFC7515 https://datatracker.ietf.org/doc/html/rfc7515 JWS, JSON Web Signature
//   - RFC7519 https://datatracker.ietf.org/doc/html/rfc7519 JWT, JSON Web Token
package strlib
