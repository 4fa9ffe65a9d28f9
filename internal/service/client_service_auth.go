package service

import (
	"context"
	"fmt"

	"github.com/ndanilov/shelf-viewer/internal/adapter"
	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

// SignUp implements [ClientAuthService]. The server runs the full validation
// pipeline; its message is preserved in the returned error so the UI can show
// it verbatim.
func (a *clientAuthService) SignUp(ctx context.Context, signUp models.SignUpRequest) error {
	if _, err := a.adapter.SignUp(ctx, signUp); err != nil {
		return fmt.Errorf("%w: %v", ErrSignUpOnServer, err)
	}

	return nil
}

// SignIn implements [ClientAuthService].
func (a *clientAuthService) SignIn(ctx context.Context, username, password string) error {
	signIn := models.SignInRequest{Username: username, Password: password}
	if _, err := a.adapter.SignIn(ctx, signIn); err != nil {
		return fmt.Errorf("%w: %v", ErrSignInOnServer, err)
	}

	return nil
}

// Profile implements [ClientAuthService].
func (a *clientAuthService) Profile(ctx context.Context) (models.UserProfile, error) {
	profile, err := a.adapter.Me(ctx)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("profile request failed: %w", err)
	}

	return profile, nil
}

// Authorized implements [ClientAuthService].
func (a *clientAuthService) Authorized() bool {
	return a.adapter.Token() != ""
}

// SignOut implements [ClientAuthService].
func (a *clientAuthService) SignOut() {
	a.adapter.SetToken("")
}
