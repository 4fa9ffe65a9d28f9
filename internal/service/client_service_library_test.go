package service

import (
	"context"
	"testing"

	"github.com/ndanilov/shelf-viewer/internal/adapter"
	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/internal/store"
	"github.com/ndanilov/shelf-viewer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks: adapter.ServerAdapter, store.LocalDocumentCache
// ─────────────────────────────────────────────

type mockServerAdapter struct {
	token string

	signUpFn         func(ctx context.Context, signUp models.SignUpRequest) (models.TokenResponse, error)
	signInFn         func(ctx context.Context, signIn models.SignInRequest) (models.TokenResponse, error)
	meFn             func(ctx context.Context) (models.UserProfile, error)
	documentsFn      func(ctx context.Context, collection models.Collection) ([]models.Document, error)
	updateDatabaseFn func(ctx context.Context, collection models.Collection, page string) error
}

func (m *mockServerAdapter) SetToken(token string) { m.token = token }
func (m *mockServerAdapter) Token() string         { return m.token }

func (m *mockServerAdapter) SignUp(ctx context.Context, signUp models.SignUpRequest) (models.TokenResponse, error) {
	return m.signUpFn(ctx, signUp)
}

func (m *mockServerAdapter) SignIn(ctx context.Context, signIn models.SignInRequest) (models.TokenResponse, error) {
	return m.signInFn(ctx, signIn)
}

func (m *mockServerAdapter) Me(ctx context.Context) (models.UserProfile, error) {
	return m.meFn(ctx)
}

func (m *mockServerAdapter) Documents(ctx context.Context, collection models.Collection) ([]models.Document, error) {
	return m.documentsFn(ctx, collection)
}

func (m *mockServerAdapter) UpdateDatabase(ctx context.Context, collection models.Collection, page string) error {
	return m.updateDatabaseFn(ctx, collection, page)
}

type memoryDocumentCache struct {
	documents map[models.Collection][]models.Document
}

func newMemoryDocumentCache() *memoryDocumentCache {
	return &memoryDocumentCache{documents: make(map[models.Collection][]models.Document)}
}

func (m *memoryDocumentCache) ReplaceDocuments(_ context.Context, collection models.Collection, documents []models.Document) error {
	m.documents[collection] = documents
	return nil
}

func (m *memoryDocumentCache) CachedDocuments(_ context.Context, collection models.Collection) ([]models.Document, error) {
	return m.documents[collection], nil
}

func newTestClientLibrary(serverAdapter adapter.ServerAdapter, cache store.LocalDocumentCache) ClientLibraryService {
	return &clientLibraryService{
		cache:   cache,
		adapter: serverAdapter,
		logger:  logger.Nop(),
	}
}

// ─────────────────────────────────────────────
// Documents
// ─────────────────────────────────────────────

func TestClientDocuments_ServerReadRefreshesCache(t *testing.T) {
	want := []models.Document{{SourceID: "101", Title: "Alpha"}}

	serverAdapter := &mockServerAdapter{
		documentsFn: func(ctx context.Context, collection models.Collection) ([]models.Document, error) {
			return want, nil
		},
	}
	cache := newMemoryDocumentCache()
	svc := newTestClientLibrary(serverAdapter, cache)

	got, err := svc.Documents(context.Background(), models.CollectionAniList)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, want, cache.documents[models.CollectionAniList])
}

func TestClientDocuments_ServerDownServesCache(t *testing.T) {
	cached := []models.Document{{SourceID: "1", Title: "Cached"}}

	serverAdapter := &mockServerAdapter{
		documentsFn: func(ctx context.Context, collection models.Collection) ([]models.Document, error) {
			return nil, assert.AnError
		},
	}
	cache := newMemoryDocumentCache()
	cache.documents[models.CollectionRoyalRoad] = cached
	svc := newTestClientLibrary(serverAdapter, cache)

	got, err := svc.Documents(context.Background(), models.CollectionRoyalRoad)

	require.NoError(t, err)
	assert.Equal(t, cached, got)
}

func TestClientDocuments_UnauthorizedIsNotMasked(t *testing.T) {
	serverAdapter := &mockServerAdapter{
		documentsFn: func(ctx context.Context, collection models.Collection) ([]models.Document, error) {
			return nil, adapter.ErrUnauthorized
		},
	}
	cache := newMemoryDocumentCache()
	cache.documents[models.CollectionAniList] = []models.Document{{SourceID: "1"}}
	svc := newTestClientLibrary(serverAdapter, cache)

	_, err := svc.Documents(context.Background(), models.CollectionAniList)

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

// ─────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────

func TestClientUpdate_RefreshesThenReads(t *testing.T) {
	refreshed := []models.Document{{SourceID: "2", Title: "Fresh"}}

	var updateCalled bool
	serverAdapter := &mockServerAdapter{
		updateDatabaseFn: func(ctx context.Context, collection models.Collection, page string) error {
			updateCalled = true
			assert.Equal(t, "3", page)
			return nil
		},
		documentsFn: func(ctx context.Context, collection models.Collection) ([]models.Document, error) {
			return refreshed, nil
		},
	}
	svc := newTestClientLibrary(serverAdapter, newMemoryDocumentCache())

	got, err := svc.Update(context.Background(), models.CollectionRoyalRoad, "3")

	require.NoError(t, err)
	assert.True(t, updateCalled)
	assert.Equal(t, refreshed, got)
}

func TestClientUpdate_ServerError(t *testing.T) {
	serverAdapter := &mockServerAdapter{
		updateDatabaseFn: func(ctx context.Context, collection models.Collection, page string) error {
			return adapter.ErrBadGateway
		},
	}
	svc := newTestClientLibrary(serverAdapter, newMemoryDocumentCache())

	_, err := svc.Update(context.Background(), models.CollectionAniList, "1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpdateOnServer)
}
