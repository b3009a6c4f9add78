// Package bytecodec converts binary data between its common
// representations: byte slices, numeric arrays, text, UTF-8 byte-safe
// strings and 32-bit big-endian integers. It also provides the small
// array helpers (XOR, padding, equality, validation) used when building
// cryptographic encodings on top of it.
//
// Base64 and hexadecimal text are handled by the sibling base64 and hex
// packages.
//
// All functions are pure and safe for concurrent use.
package bytecodec
