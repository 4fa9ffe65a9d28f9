package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "shelf-viewer"
	username := "alice"
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, username, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != username {
		t.Errorf("expected subject %q, got %q", username, claims.Subject)
	}
}

func TestGenerateJWTToken_DefaultDuration(t *testing.T) {
	token, err := GenerateJWTToken("iss", "alice", 0, "key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	claims := token.Token.Claims.(*jwt.RegisteredClaims)
	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if lifetime != defaultTokenDuration {
		t.Errorf("expected default lifetime %v, got %v", defaultTokenDuration, lifetime)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		username string
		key      string
	}{
		{"empty issuer", "", "alice", "key"},
		{"empty username", "iss", "", "key"},
		{"empty key", "iss", "alice", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.username, time.Hour, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issuer := "shelf-viewer"
	username := "alice"
	key := "secret-key"

	genToken, err := GenerateJWTToken(issuer, username, 5*time.Minute, key)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.Username != username {
		t.Errorf("expected username %q, got %q", username, parsedToken.Username)
	}
}

func TestValidateAndParseJWTToken_SubjectAccessorsAgree(t *testing.T) {
	genToken, err := GenerateJWTToken("shelf-viewer", "alice", time.Hour, "key")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "shelf-viewer")
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}

	// The claims must survive into the returned Token itself, not only in
	// the cached Username field.
	fromClaims, err := parsedToken.GetUsername()
	if err != nil {
		t.Fatalf("expected subject claim on parsed token, got error: %v", err)
	}
	if fromClaims != parsedToken.Username {
		t.Errorf("subject claim %q disagrees with Username %q", fromClaims, parsedToken.Username)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("shelf-viewer", "alice", time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "shelf-viewer")
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, _ := GenerateJWTToken("shelf-viewer", "alice", -time.Second, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "shelf-viewer")
	if err == nil {
		t.Error("expected error for expired token, got nil")
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected wrapped jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", "alice", time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestValidateAndParseJWTToken_MissingSubject(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:    "shelf-viewer",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(signed, "key", "shelf-viewer")
	if !errors.Is(err, ErrEmptySubject) {
		t.Errorf("expected ErrEmptySubject, got %v", err)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"missing token", "Bearer", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
