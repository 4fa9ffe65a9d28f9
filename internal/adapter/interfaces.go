// Package adapter provides the client-side gateway to the shelf-viewer
// server's REST API.
package adapter

import (
	"context"

	"github.com/ndanilov/shelf-viewer/models"
)

// ServerAdapter is the transport-agnostic contract the terminal client uses
// to talk to the server. Implementations hold the bearer token obtained at
// sign-in and attach it to every authenticated call.
type ServerAdapter interface {
	// SetToken stores the bearer token used for authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string if none has been set.
	Token() string

	// SignUp registers a new account and stores the returned token.
	SignUp(ctx context.Context, signUp models.SignUpRequest) (models.TokenResponse, error)

	// SignIn authenticates and stores the returned token.
	SignIn(ctx context.Context, signIn models.SignInRequest) (models.TokenResponse, error)

	// Me returns the profile of the authenticated user.
	Me(ctx context.Context) (models.UserProfile, error)

	// Documents lists the server's cached documents of a collection.
	Documents(ctx context.Context, collection models.Collection) ([]models.Document, error)

	// UpdateDatabase asks the server to refresh a collection from its scraper.
	UpdateDatabase(ctx context.Context, collection models.Collection, page string) error
}
