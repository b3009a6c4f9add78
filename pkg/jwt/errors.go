package jwt

import (
	"errors"
	"fmt"
)

var (
	ErrNoClaimSet  = errors.New("no claim set")
	ErrEmptyHeader = errors.New("no header parameters")
	ErrNoSigner    = errors.New("no signer")
)

type ErrSigningFailed struct {
	Inner error
}

func (e *ErrSigningFailed) Error() string {
	return fmt.Sprintf("signing failed: %v", e.Inner)
}

func (e *ErrSigningFailed) Unwrap() error {
	return e.Inner
}

func NewSigningError(inner error) *ErrSigningFailed {
	return &ErrSigningFailed{Inner: inner}
}

// ErrUnsupportedAlgorithm is returned when no Signer is known for the
// requested algorithm.
type ErrUnsupportedAlgorithm struct {
	Algorithm string
}

func (e *ErrUnsupportedAlgorithm) Error() string {
	return fmt.Sprintf("algorithm %q not implemented", e.Algorithm)
}
