package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ndanilov/shelf-viewer/internal/fetcher"
	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/internal/store"
	"github.com/ndanilov/shelf-viewer/internal/utils"
	"github.com/ndanilov/shelf-viewer/models"
)

// libraryService is the concrete implementation of LibraryService.
// It reads cached documents from a DocumentRepository and refreshes them
// through the per-collection scraper clients.
type libraryService struct {
	documents store.DocumentRepository
	fetchers  fetcher.Fetchers

	logger *logger.Logger
}

// NewLibraryService constructs a LibraryService over the given document
// repository and scraper clients. Collections without a configured fetcher can
// still be listed but not refreshed.
func NewLibraryService(documents store.DocumentRepository, fetchers fetcher.Fetchers, logger *logger.Logger) LibraryService {
	return &libraryService{
		documents: documents,
		fetchers:  fetchers,
		logger:    logger,
	}
}

// ListDocuments implements [LibraryService]. It returns every cached document
// of the collection, ordered by title. Returns ErrUnknownCollection for a
// collection name outside the supported set.
func (l *libraryService) ListDocuments(ctx context.Context, collection models.Collection) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	if !collection.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	documents, err := l.documents.ListDocuments(ctx, collection)
	if err != nil {
		log.Err(err).Str("collection", string(collection)).Msg("document listing failed")
		return nil, fmt.Errorf("document listing failed: %w", err)
	}

	return documents, nil
}

// Refresh implements [LibraryService]. It asks the collection's scraper for a
// page of documents, camelizes the payload keys to match the wire convention,
// and upserts the result keyed by (collection, source id) so repeated
// refreshes never duplicate documents.
func (l *libraryService) Refresh(ctx context.Context, collection models.Collection, page string) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	if !collection.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	f, ok := l.fetchers[collection]
	if !ok {
		return nil, fmt.Errorf("%w: no scraper configured for %q", ErrUnknownCollection, collection)
	}

	documents, err := f.Fetch(ctx, page)
	if err != nil {
		log.Err(err).Str("collection", string(collection)).Str("page", page).Msg("scraper fetch failed")
		return nil, fmt.Errorf("scraper fetch failed: %w", err)
	}

	for i := range documents {
		documents[i].Collection = collection
		documents[i].Payload = utils.CamelizeMap(documents[i].Payload)
	}

	if len(documents) > 0 {
		if err = l.documents.UpsertDocuments(ctx, documents...); err != nil {
			log.Err(err).Str("collection", string(collection)).Msg("document upsert failed")
			return nil, fmt.Errorf("document upsert failed: %w", err)
		}
	}

	log.Info().
		Str("collection", string(collection)).
		Str("page", page).
		Int("documents", len(documents)).
		Msg("collection refreshed")

	return documents, nil
}

// LastFetched implements [LibraryService].
func (l *libraryService) LastFetched(ctx context.Context, collection models.Collection) (time.Time, error) {
	if !collection.Valid() {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	lastFetched, err := l.documents.LastFetched(ctx, collection)
	if err != nil {
		return time.Time{}, fmt.Errorf("last fetched lookup failed: %w", err)
	}

	return lastFetched, nil
}
