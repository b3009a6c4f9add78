package header

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/picatz/strlib/pkg/jwa"
)

var (
	// ErrParameterNotFound is returned when a requested parameter is missing.
	ErrParameterNotFound = errors.New("header parameter not found")

	// ErrInvalidParameterType is returned when a parameter holds a value of
	// an unexpected type.
	ErrInvalidParameterType = errors.New("header parameter has invalid type")
)

// There are three classes of Header Parameter names: Registered Header
// Parameter names, Public Header Parameter names, and Private Header
// Parameter names.
//
// https://datatracker.ietf.org/doc/html/rfc7515#section-4
type (
	ParameterName = string

	Registered = ParameterName
	Public     = ParameterName
	Private    = ParameterName
)

// Registered Header Parameter Names used when building tokens.
//
// https://datatracker.ietf.org/doc/html/rfc7515#section-4.1
const (
	Type        Registered = "typ"
	Algorithm   Registered = "alg"
	ContentType Registered = "cty"
	KeyID       Registered = "kid"
)

// TypeJWT is the "typ" value of a JSON Web Token.
const TypeJWT = "JWT"

// Parameters is a JSON object containing the parameters describing
// the cryptographic operations and parameters employed.
type Parameters map[ParameterName]any

// Text returns the JSON text of the parameters. Keys are sorted, so the
// result is deterministic for a given set of parameters.
func (h Parameters) Text() (string, error) {
	b, err := json.Marshal(h)
	if err != nil {
		return "", fmt.Errorf("failed to encode JOSE header JSON: %w", err)
	}
	return string(b), nil
}

// Parse reads header parameters from JSON text. The text must hold a
// JSON object.
func Parse(text string) (Parameters, error) {
	var params Parameters
	if err := json.Unmarshal([]byte(text), &params); err != nil {
		return nil, fmt.Errorf("failed to decode JOSE header JSON: %w", err)
	}
	if params == nil {
		return nil, fmt.Errorf("failed to decode JOSE header JSON: %q is not an object", text)
	}
	return params, nil
}

func (h Parameters) Type() (string, error) {
	value, err := h.Get(Type)
	if err != nil {
		return "", err
	}
	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is %T", ErrInvalidParameterType, Type, value)
	}
	return strValue, nil
}

func (h Parameters) Algorithm() (jwa.Algorithm, error) {
	value, err := h.Get(Algorithm)
	if err != nil {
		return "", err
	}
	alg, ok := value.(jwa.Algorithm)
	if !ok {
		return "", fmt.Errorf("%w: %q is %T", ErrInvalidParameterType, Algorithm, value)
	}
	return alg, nil
}

// SymmetricAlgorithm reports whether the "alg" parameter names an HMAC
// algorithm.
func (h Parameters) SymmetricAlgorithm() (bool, error) {
	alg, err := h.Algorithm()
	if err != nil {
		return false, err
	}

	_, ok := jwa.HMACHash(alg)
	return ok, nil
}

func (h Parameters) Get(param ParameterName) (any, error) {
	value, ok := h[param]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParameterNotFound, param)
	}
	return value, nil
}
