package keyutil

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/picatz/strlib/pkg/base64"
	"github.com/picatz/strlib/pkg/bytecodec"
	"github.com/picatz/strlib/pkg/hex"
)

// Format names the text representation of a symmetric key.
type Format string

const (
	// Text keys are used as the UTF-8 bytes of the given string.
	Text Format = "text"

	// Hex keys are hexadecimal digits, optionally grouped with "-".
	Hex Format = "hex"

	// Base64 keys are base64 or base64url text.
	Base64 Format = "base64"
)

// ErrEmptyKey is returned when a key decodes to zero bytes.
var ErrEmptyKey = errors.New("keyutil: empty symmetric key")

// SymmetricKeysEqual checks if the given keys are the same.
func SymmetricKeysEqual(key1 []byte, key2 []byte) bool {
	return subtle.ConstantTimeCompare(key1, key2) == 1
}

// NewSymmetricKey generates a new symmetric key of the given size.
func NewSymmetricKey(size int) ([]byte, error) {
	key := make([]byte, size)

	_, err := rand.Read(key)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new symmetric key: %w", err)
	}

	return key, nil
}

// ParseSymmetricKey decodes a key given in the named format.
func ParseSymmetricKey(value string, format Format) ([]byte, error) {
	var (
		key []byte
		err error
	)

	switch format {
	case Text, "":
		key = bytecodec.TextToBytes(bytecodec.EncodeUTF8Safe(value))
	case Hex:
		key, err = hex.Decode(value)
		if err != nil {
			return nil, fmt.Errorf("failed to decode hex symmetric key: %w", err)
		}
	case Base64:
		key = base64.Decode(value)
	default:
		return nil, fmt.Errorf("keyutil: unknown key format %q", format)
	}

	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	return key, nil
}

// FormatSymmetricKey returns the key in the named format. Text keys are
// not supported, since random bytes are rarely valid UTF-8.
func FormatSymmetricKey(key []byte, format Format) (string, error) {
	switch format {
	case Hex:
		return hex.Encode(key, false), nil
	case Base64:
		return base64.EncodeURL(key), nil
	default:
		return "", fmt.Errorf("keyutil: cannot format key as %q", format)
	}
}
