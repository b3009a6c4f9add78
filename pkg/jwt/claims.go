package jwt

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// There are three classes of JWT Claim Names:
// 1. Registered Claim Names
// 2. Public Claim Names
// 3. Private Claim Names
type (
	ClaimName = string

	Registered = ClaimName
	Public     = ClaimName
	Private    = ClaimName
)

// ClaimValue is a piece of information asserted about a subject, represented
// as a name/value pair consisting of a ClaimName and a ClaimValue.
type ClaimValue = any

// Registered Claim Names
//
// https://datatracker.ietf.org/doc/html/rfc7519#section-4.1
const (
	Issuer         Registered = "iss"
	Subject        Registered = "sub"
	Audience       Registered = "aud"
	ExpirationTime Registered = "exp"
	NotBefore      Registered = "nbf"
	IssuedAt       Registered = "iat"
	JWTID          Registered = "jti"
)

// ClaimsSet is a JSON object that contains the claims conveyed by the JWT.
//
// A claim is a piece of information asserted about a subject, represented
// as a name/value pair consisting of a Claim Name and a Claim Value.
type ClaimsSet map[ClaimName]ClaimValue

// Text returns the JSON text of the claims set, with sorted keys.
func (claims ClaimsSet) Text() (string, error) {
	b, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to encode claims JSON: %w", err)
	}
	return string(b), nil
}

func (claims ClaimsSet) Get(name ClaimName) (ClaimValue, error) {
	value, ok := claims[name]
	if !ok {
		return nil, fmt.Errorf("claim %q not found in claims set", name)
	}
	return value, nil
}

func (claims ClaimsSet) Set(name ClaimName, value ClaimValue) {
	claims[name] = value
}

func (claims ClaimsSet) Names() []ClaimName {
	names := make([]ClaimName, 0, len(claims))

	for name := range claims {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// normalize converts registered claim values to their JSON form in place:
// times and JSON numbers become NumericDate seconds, JSON string arrays
// become []string and fmt.Stringer values become strings.
func (claims ClaimsSet) normalize() error {
	for name, value := range claims {
		switch name {
		case ExpirationTime, NotBefore, IssuedAt:
			switch v := value.(type) {
			// good
			case int64:
			// ok
			case int:
				claims[name] = int64(v)
			case float64:
				// Numbers decoded from JSON text.
				claims[name] = int64(v)
			case time.Time:
				claims[name] = v.Unix()
			// bad
			default:
				return fmt.Errorf("cannot use %T with %q", v, name)
			}
		case Issuer, Subject, Audience, JWTID:
			switch v := value.(type) {
			// good
			case string, []string:
			// ok
			case []any:
				// Arrays decoded from JSON text.
				values := make([]string, len(v))
				for i, elem := range v {
					str, ok := elem.(string)
					if !ok {
						return fmt.Errorf("cannot use %T in %q", elem, name)
					}
					values[i] = str
				}
				claims[name] = values
			case fmt.Stringer:
				claims[name] = v.String()
			// bad
			default:
				return fmt.Errorf("cannot use %T with %q", v, name)
			}
		}
	}
	return nil
}
