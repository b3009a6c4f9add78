// Package header holds the JOSE header parameters of a token and their
// JSON text form.
//
// https://datatracker.ietf.org/doc/html/rfc7515#section-4
package header
