package service

import (
	"context"

	"github.com/ndanilov/shelf-viewer/models"
)

// ClientAuthService defines the client-side contract for account creation and
// authentication against the remote server.
type ClientAuthService interface {
	// SignUp creates a new account on the server. On success the adapter
	// holds the issued bearer token.
	SignUp(ctx context.Context, signUp models.SignUpRequest) error

	// SignIn authenticates against the server. On success the adapter holds
	// the issued bearer token.
	SignIn(ctx context.Context, username, password string) error

	// Profile returns the authenticated user's profile from the server.
	Profile(ctx context.Context) (models.UserProfile, error)

	// Authorized reports whether a bearer token is currently held.
	Authorized() bool

	// SignOut drops the currently held bearer token.
	SignOut()
}

// ClientLibraryService defines the client-side contract for browsing and
// refreshing document collections. Reads prefer the server and fall back to
// the local cache when the server is unreachable.
type ClientLibraryService interface {
	// Documents returns the documents of a collection. A successful server
	// read refreshes the local cache; a failed one serves the cache instead.
	Documents(ctx context.Context, collection models.Collection) ([]models.Document, error)

	// Update asks the server to re-fetch a collection from its scraper and
	// returns the refreshed documents.
	Update(ctx context.Context, collection models.Collection, page string) ([]models.Document, error)
}
