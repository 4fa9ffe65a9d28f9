package fetcher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(t *testing.T, serverURL string, collection models.Collection) Fetcher {
	t.Helper()
	f, err := NewHTTPFetcher(serverURL, 5*time.Second, collection, logger.Nop())
	require.NoError(t, err)
	return f
}

func TestNewHTTPFetcher_InvalidAddress(t *testing.T) {
	_, err := NewHTTPFetcher("   ", time.Second, models.CollectionAniList, logger.Nop())
	assert.Error(t, err)
}

func TestNewHTTPFetcher_UnknownCollection(t *testing.T) {
	_, err := NewHTTPFetcher("http://localhost:9000", time.Second, models.Collection("webnovel"), logger.Nop())
	assert.Error(t, err)
}

func TestFetch_Success(t *testing.T) {
	fetchedAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/fetch", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2", body["page"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"source_id": "101", "title": "Alpha", "url": "https://anilist.co/anime/101", "payload": {"episode_count": 12}, "fetched_at": "2026-08-01T12:00:00Z"},
			{"source_id": "102", "title": "Beta", "url": "https://anilist.co/anime/102"}
		]`))
	}))
	defer srv.Close()

	f := newTestFetcher(t, srv.URL, models.CollectionAniList)
	docs, err := f.Fetch(context.Background(), "2")

	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, models.CollectionAniList, docs[0].Collection)
	assert.Equal(t, "101", docs[0].SourceID)
	assert.Equal(t, "Alpha", docs[0].Title)
	assert.Equal(t, fetchedAt, docs[0].FetchedAt)
	assert.Equal(t, float64(12), docs[0].Payload["episode_count"])

	// missing fetched_at is filled with the current time
	assert.False(t, docs[1].FetchedAt.IsZero())
	assert.Nil(t, docs[1].Payload)
}

func TestFetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := newTestFetcher(t, srv.URL, models.CollectionRoyalRoad)
	_, err := f.Fetch(context.Background(), "1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScraperUnavailable)
}

func TestFetch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "a list"}`))
	}))
	defer srv.Close()

	f := newTestFetcher(t, srv.URL, models.CollectionAniList)
	_, err := f.Fetch(context.Background(), "1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadScraperResponse)
}

func TestFetch_ConnectionRefused(t *testing.T) {
	f := newTestFetcher(t, "http://127.0.0.1:1", models.CollectionAniList)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := f.Fetch(ctx, "1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScraperUnavailable)
}
