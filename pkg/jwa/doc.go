// Package jwa names the JSON Web Algorithms (RFC 7518) that tokens can be
// signed with: the HMAC SHA-2 family and the unsecured "none" algorithm.
//
// https://datatracker.ietf.org/doc/html/rfc7518
package jwa
