package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode"

	"github.com/ndanilov/shelf-viewer/internal/config"
	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/internal/store"
	"github.com/ndanilov/shelf-viewer/internal/utils"
	"github.com/ndanilov/shelf-viewer/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength is the shortest password accepted at sign-up.
	minPasswordLength = 6

	// defaultRole is assigned to every account created through sign-up.
	defaultRole = "user"

	// tokenType is the scheme reported alongside every issued access token.
	tokenType = "bearer"
)

// authService is the concrete implementation of AuthService.
// It handles sign-up validation, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// users is the data-access layer used to create and look up accounts.
	users store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(users store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		users:         users,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// AddUser creates a new account.
//
// The validation pipeline runs in a fixed order so that a payload with
// several defects always produces the same message:
//  1. every caller-supplied field must be non-empty (ErrAllFieldsRequired);
//  2. username and password must contain no whitespace (ErrUsernameHasSpaces);
//  3. password must be at least six characters (ErrPasswordTooShort);
//  4. the insert must not collide with an existing username (ErrUsernameExists).
//
// The password is bcrypt-hashed before persistence; the plain text is never
// stored. A store-level uniqueness violation is the only duplicate check, so
// concurrent sign-ups with the same username race safely: exactly one insert
// wins.
func (a *authService) AddUser(ctx context.Context, signUp models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateSignUp(signUp); err != nil {
		log.Error().Err(err).Str("username", signUp.Username).Msg("sign-up validation failed")
		return models.User{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(signUp.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:       signUp.Username,
		HashedPassword: hashedPassword,
		FirstName:      signUp.FirstName,
		LastName:       signUp.LastName,
		Email:          signUp.Email,
		AddDate:        time.Now(),
		Role:           defaultRole,
	}

	createdUser, err := a.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			return models.User{}, ErrUsernameExists
		}
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// Authenticate verifies a username/password pair against the store.
//
// An unknown username and a wrong password are indistinguishable to the
// caller: both return ErrInvalidCredentials. Unexpected storage failures are
// wrapped and returned as-is so they surface as server errors rather than a
// rejected login.
func (a *authService) Authenticate(ctx context.Context, username string, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword(foundUser.HashedPassword, []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateAccessToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the username as the subject, and expires
// after tokenDuration.
//
// Returns the wire-level response on success or a wrapped error if JWT
// generation fails.
func (a *authService) CreateAccessToken(ctx context.Context, user models.User) (models.TokenResponse, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenResponse{AccessToken: token.SignedString, TokenType: tokenType}, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// expiry and the issuer claim. A structurally valid token without a subject
// yields ErrTokenMissingSubject; every other validation failure is normalised
// to ErrTokenInvalid so that callers do not need to inspect low-level JWT
// errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, utils.ErrEmptySubject) {
			return models.Token{}, ErrTokenMissingSubject
		}
		return models.Token{}, ErrTokenInvalid
	}

	return token, nil
}

// CurrentUser resolves a bearer token to the account that owns it.
//
// Every failure mode collapses to ErrCouldNotValidateCredentials: bad
// signature, expiry, missing subject, and a subject whose account no longer
// exists all look identical to the caller.
func (a *authService) CurrentUser(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, ErrCouldNotValidateCredentials
	}

	user, err := a.users.FindUserByUsername(ctx, token.Username)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("username", token.Username).Msg("current user lookup failed")
		}
		return models.User{}, ErrCouldNotValidateCredentials
	}

	return user, nil
}

func validateSignUp(signUp models.SignUpRequest) error {
	if signUp.Username == "" || signUp.Password == "" ||
		signUp.FirstName == "" || signUp.LastName == "" || signUp.Email == "" {
		return ErrAllFieldsRequired
	}

	if containsSpace(signUp.Username) || containsSpace(signUp.Password) {
		return ErrUsernameHasSpaces
	}

	if len(signUp.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}

func containsSpace(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}
