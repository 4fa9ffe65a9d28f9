package service

import "errors"

// Validation errors carry the exact messages returned to API clients, so the
// handler layer can write err.Error() straight into the response body.
var (
	ErrAllFieldsRequired = errors.New("All fields are required.")
	ErrUsernameHasSpaces = errors.New("Username cannot contain spaces.")
	ErrPasswordTooShort  = errors.New("Password must be at least 6 characters long.")
	ErrUsernameExists    = errors.New("Username already exists.")
)

var (
	ErrInvalidCredentials          = errors.New("Incorrect username or password")
	ErrCouldNotValidateCredentials = errors.New("Could not validate credentials")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenInvalid        = errors.New("token is expired or invalid")
	ErrTokenMissingSubject = errors.New("token has no subject")

	ErrUnknownCollection = errors.New("unknown collection")
)

// Client-side errors wrapping failed server calls.
var (
	ErrSignUpOnServer = errors.New("sign-up on server failed")
	ErrSignInOnServer = errors.New("sign-in on server failed")
	ErrUpdateOnServer = errors.New("collection update on server failed")
)
