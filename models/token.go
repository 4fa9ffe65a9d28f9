package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT access token with convenience accessors for the
// authentication flow.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] for standard claim access. SignedString holds the
// compact serialized form ready to be transmitted in HTTP headers. Username
// is a cached copy of the "sub" claim populated during verification.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, iss, ...) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// Username is the subject extracted from the "sub" claim.
	Username string `json:"-"`
}

// ErrNoSubject is returned by [Token.GetUsername] when the token carries no
// usable subject claim.
var ErrNoSubject = errors.New("token has no subject claim")

// GetUsername extracts the username from the token's "sub" (subject) claim.
// Returns [ErrNoSubject] if the claim is missing or empty.
func (t *Token) GetUsername() (string, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return "", errors.Join(ErrNoSubject, err)
	}
	if subject == "" {
		return "", ErrNoSubject
	}

	return subject, nil
}

// String returns the compact JWS serialization of the token. It implements
// the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
