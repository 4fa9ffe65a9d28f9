package service

import (
	"context"
	"time"

	"github.com/ndanilov/shelf-viewer/models"
)

type AuthService interface {
	// AddUser runs the sign-up validation pipeline and persists the new
	// account with a bcrypt-hashed password.
	AddUser(ctx context.Context, signUp models.SignUpRequest) (models.User, error)

	// Authenticate verifies a username/password pair. Unknown usernames and
	// wrong passwords both yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, username string, password string) (models.User, error)

	// CreateAccessToken issues a signed bearer token for the user.
	CreateAccessToken(ctx context.Context, user models.User) (models.TokenResponse, error)

	// ParseToken validates and decodes a raw JWT string.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// CurrentUser resolves a raw bearer token to the account it belongs to.
	// Every failure mode collapses to ErrCouldNotValidateCredentials.
	CurrentUser(ctx context.Context, tokenString string) (models.User, error)
}

type LibraryService interface {
	// ListDocuments returns all cached documents of a collection.
	ListDocuments(ctx context.Context, collection models.Collection) ([]models.Document, error)

	// Refresh asks the collection's scraper for a page of fresh documents and
	// upserts them into the store. Returns the refreshed documents.
	Refresh(ctx context.Context, collection models.Collection, page string) ([]models.Document, error)

	// LastFetched reports when a collection was last refreshed.
	// Returns the zero time for a collection that was never fetched.
	LastFetched(ctx context.Context, collection models.Collection) (time.Time, error)
}
