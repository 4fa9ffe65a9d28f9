package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/internal/service"
	"github.com/ndanilov/shelf-viewer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	addUserFn           func(ctx context.Context, signUp models.SignUpRequest) (models.User, error)
	authenticateFn      func(ctx context.Context, username, password string) (models.User, error)
	createAccessTokenFn func(ctx context.Context, user models.User) (models.TokenResponse, error)
	parseTokenFn        func(ctx context.Context, tokenString string) (models.Token, error)
	currentUserFn       func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) AddUser(ctx context.Context, signUp models.SignUpRequest) (models.User, error) {
	return m.addUserFn(ctx, signUp)
}

func (m *mockAuthService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	return m.authenticateFn(ctx, username, password)
}

func (m *mockAuthService) CreateAccessToken(ctx context.Context, user models.User) (models.TokenResponse, error) {
	if m.createAccessTokenFn != nil {
		return m.createAccessTokenFn(ctx, user)
	}
	return models.TokenResponse{AccessToken: "signed-token", TokenType: "bearer"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, tokenString string) (models.User, error) {
	return m.currentUserFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock LibraryService
// ─────────────────────────────────────────────

type mockLibraryService struct {
	listDocumentsFn func(ctx context.Context, collection models.Collection) ([]models.Document, error)
	refreshFn       func(ctx context.Context, collection models.Collection, page string) ([]models.Document, error)
	lastFetchedFn   func(ctx context.Context, collection models.Collection) (time.Time, error)
}

func (m *mockLibraryService) ListDocuments(ctx context.Context, collection models.Collection) ([]models.Document, error) {
	return m.listDocumentsFn(ctx, collection)
}

func (m *mockLibraryService) Refresh(ctx context.Context, collection models.Collection, page string) ([]models.Document, error) {
	return m.refreshFn(ctx, collection, page)
}

func (m *mockLibraryService) LastFetched(ctx context.Context, collection models.Collection) (time.Time, error) {
	if m.lastFetchedFn != nil {
		return m.lastFetchedFn(ctx, collection)
	}
	return time.Time{}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(t *testing.T, auth service.AuthService, library service.LibraryService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:    auth,
		LibraryService: library,
	}
	return NewHandler(svcs, logger.Nop())
}

func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// ─────────────────────────────────────────────
// POST /api/auth/sign-up
// ─────────────────────────────────────────────

func TestSignUp_Success(t *testing.T) {
	auth := &mockAuthService{
		addUserFn: func(ctx context.Context, signUp models.SignUpRequest) (models.User, error) {
			assert.Equal(t, "alice", signUp.Username)
			return models.User{UserID: 1, Username: signUp.Username}, nil
		},
	}
	h := newTestHandler(t, auth, &mockLibraryService{})

	body := jsonBody(t, models.SignUpRequest{
		Username: "alice", Password: "secret123",
		FirstName: "Alice", LastName: "Liddell", Email: "alice@example.com",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-up", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var token models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &token))
	assert.Equal(t, "signed-token", token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
}

func TestSignUp_ValidationMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"missing field", service.ErrAllFieldsRequired, "All fields are required."},
		{"spaces", service.ErrUsernameHasSpaces, "Username cannot contain spaces."},
		{"short password", service.ErrPasswordTooShort, "Password must be at least 6 characters long."},
		{"duplicate", service.ErrUsernameExists, "Username already exists."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				addUserFn: func(ctx context.Context, signUp models.SignUpRequest) (models.User, error) {
					return models.User{}, tt.err
				},
			}
			h := newTestHandler(t, auth, &mockLibraryService{})

			req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-up", strings.NewReader(`{"username":"alice"}`))
			rec := httptest.NewRecorder()

			h.Init().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, strings.TrimSpace(rec.Body.String()))
		})
	}
}

func TestSignUp_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockLibraryService{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-up", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// POST /api/auth/sign-in and /api/auth/token
// ─────────────────────────────────────────────

func TestSignIn_Success(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(ctx context.Context, username, password string) (models.User, error) {
			assert.Equal(t, "alice", username)
			assert.Equal(t, "secret123", password)
			return models.User{UserID: 1, Username: username}, nil
		},
	}
	h := newTestHandler(t, auth, &mockLibraryService{})

	body := jsonBody(t, models.SignInRequest{Username: "alice", Password: "secret123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-in", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var token models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &token))
	assert.Equal(t, "bearer", token.TokenType)
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(ctx context.Context, username, password string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHandler(t, auth, &mockLibraryService{})

	body := jsonBody(t, models.SignInRequest{Username: "alice", Password: "wrongpass"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-in", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	assert.Equal(t, "Incorrect username or password", strings.TrimSpace(rec.Body.String()))
}

func TestToken_FormCredentials(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(ctx context.Context, username, password string) (models.User, error) {
			assert.Equal(t, "alice", username)
			return models.User{Username: username}, nil
		},
	}
	h := newTestHandler(t, auth, &mockLibraryService{})

	form := url.Values{"username": {"alice"}, "password": {"secret123"}}
	req := httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var token models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &token))
	assert.Equal(t, "signed-token", token.AccessToken)
}

// ─────────────────────────────────────────────
// GET /api/auth/me
// ─────────────────────────────────────────────

func TestMe_Success(t *testing.T) {
	auth := &mockAuthService{
		currentUserFn: func(ctx context.Context, tokenString string) (models.User, error) {
			assert.Equal(t, "signed-token", tokenString)
			return models.User{
				UserID:   1,
				Username: "alice",
				Email:    "alice@example.com",
				Role:     "user",
			}, nil
		},
	}
	h := newTestHandler(t, auth, &mockLibraryService{})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer signed-token")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var profile map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "alice", profile["username"])
	assert.Equal(t, "user", profile["role"])

	// internal fields never leave the boundary
	assert.NotContains(t, rec.Body.String(), "hashed")
}
