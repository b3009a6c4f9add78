// Package codeunit maps Go strings to and from byte sequences one UTF-16
// code unit at a time, keeping only the low 8 bits of each unit.
//
// This is not UTF-8 encoding: only text whose code units are all below
// 256 survives a round trip.
package codeunit

import "unicode/utf16"

// ToBytes returns the low byte of every UTF-16 code unit of s.
func ToBytes(s string) []byte {
	units := utf16.Encode([]rune(s))

	b := make([]byte, len(units))
	for i, u := range units {
		b[i] = byte(u)
	}

	return b
}

// FromBytes builds a string with one code unit per byte.
func FromBytes(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}

	return string(runes)
}
