// Package keyutil generates symmetric signing keys and converts them to
// and from their text, hexadecimal and base64 forms.
package keyutil
