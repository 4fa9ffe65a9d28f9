package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ndanilov/shelf-viewer/internal/fetcher"
	"github.com/ndanilov/shelf-viewer/internal/service"
	"github.com/ndanilov/shelf-viewer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authOK resolves every bearer token to a fixed user so that library tests can
// pass the auth middleware.
func authOK() *mockAuthService {
	return &mockAuthService{
		currentUserFn: func(ctx context.Context, tokenString string) (models.User, error) {
			return models.User{UserID: 1, Username: "alice", Role: "user"}, nil
		},
	}
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set("Authorization", "Bearer signed-token")
	return req
}

// ─────────────────────────────────────────────
// POST /api/database/
// ─────────────────────────────────────────────

func TestDocuments_Success(t *testing.T) {
	library := &mockLibraryService{
		listDocumentsFn: func(ctx context.Context, collection models.Collection) ([]models.Document, error) {
			assert.Equal(t, models.CollectionAniList, collection)
			return []models.Document{
				{SourceID: "101", Title: "Alpha", URL: "https://anilist.co/anime/101"},
			}, nil
		},
	}
	h := newTestHandler(t, authOK(), library)

	req := authedRequest(http.MethodPost, "/api/database/", `{"db":"anilist"}`)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var documents []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &documents))
	require.Len(t, documents, 1)
	assert.Equal(t, "101", documents[0]["sourceId"])
	assert.Equal(t, "Alpha", documents[0]["title"])
}

func TestDocuments_EmptyCollectionIsJSONArray(t *testing.T) {
	library := &mockLibraryService{
		listDocumentsFn: func(ctx context.Context, collection models.Collection) ([]models.Document, error) {
			return nil, nil
		},
	}
	h := newTestHandler(t, authOK(), library)

	req := authedRequest(http.MethodPost, "/api/database/", `{"db":"royalroad"}`)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestDocuments_UnknownCollection(t *testing.T) {
	library := &mockLibraryService{
		listDocumentsFn: func(ctx context.Context, collection models.Collection) ([]models.Document, error) {
			return nil, service.ErrUnknownCollection
		},
	}
	h := newTestHandler(t, authOK(), library)

	req := authedRequest(http.MethodPost, "/api/database/", `{"db":"webnovel"}`)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDocuments_Unauthenticated(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockLibraryService{})

	req := httptest.NewRequest(http.MethodPost, "/api/database/", strings.NewReader(`{"db":"anilist"}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assertUnauthorized(t, rec)
}

// ─────────────────────────────────────────────
// POST /api/database/update
// ─────────────────────────────────────────────

func TestUpdateDatabase_Success(t *testing.T) {
	library := &mockLibraryService{
		refreshFn: func(ctx context.Context, collection models.Collection, page string) ([]models.Document, error) {
			assert.Equal(t, models.CollectionRoyalRoad, collection)
			assert.Equal(t, "3", page)
			return []models.Document{{SourceID: "9000"}}, nil
		},
	}
	h := newTestHandler(t, authOK(), library)

	req := authedRequest(http.MethodPost, "/api/database/update", `{"db":"royalroad","page":"3"}`)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateDatabase_ScraperDown(t *testing.T) {
	library := &mockLibraryService{
		refreshFn: func(ctx context.Context, collection models.Collection, page string) ([]models.Document, error) {
			return nil, fetcher.ErrScraperUnavailable
		},
	}
	h := newTestHandler(t, authOK(), library)

	req := authedRequest(http.MethodPost, "/api/database/update", `{"db":"anilist","page":"1"}`)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestUpdateDatabase_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, authOK(), &mockLibraryService{})

	req := authedRequest(http.MethodPost, "/api/database/update", "{not json")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
