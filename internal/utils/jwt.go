package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ndanilov/shelf-viewer/models"
)

// defaultTokenDuration applies when a caller requests a token without an
// explicit lifetime.
const defaultTokenDuration = 15 * time.Minute

// ErrEmptySubject is returned by [ValidateAndParseJWTToken] when a token
// passes signature and expiry checks but carries no subject claim.
var ErrEmptySubject = errors.New("empty subject in token claims")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for the given username.
//
// The token carries the standard claims:
//   - Issuer    (iss): issuer
//   - Subject   (sub): username
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now + tokenDuration
//
// A zero tokenDuration falls back to 15 minutes. Returns an error if issuer,
// username, or signKey is empty, or if signing fails.
func GenerateJWTToken(issuer, username string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || username == "" || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT token")
	}

	if tokenDuration == 0 {
		tokenDuration = defaultTokenDuration
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Username: username}, nil
}

// ValidateAndParseJWTToken validates the given JWT string and extracts its
// claims.
//
// Validation covers the HMAC-SHA256 signature, the issuer claim, and the
// expiration claim. A token that validates but has a missing or empty
// subject fails with [ErrEmptySubject]; every other failure is returned as a
// wrapped parsing error.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	claims, ok := token.Claims.(*models.Token)
	if !ok {
		return models.Token{}, fmt.Errorf("unexpected claims type %T", token.Claims)
	}

	username, err := claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if username == "" {
		return models.Token{}, ErrEmptySubject
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims.RegisteredClaims,
		SignedString:     tokenString,
		Username:         username,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(strings.TrimSpace(authorizationHeader))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
