package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ndanilov/shelf-viewer/internal/adapter"
	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/internal/store"
	"github.com/ndanilov/shelf-viewer/models"
)

type clientLibraryService struct {
	cache   store.LocalDocumentCache
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientLibraryService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientLibraryService {
	return &clientLibraryService{
		cache:   localStore.DocumentCache,
		adapter: serverAdapter,
		logger:  logger,
	}
}

// Documents implements [ClientLibraryService]. The server is the source of
// truth; every successful read refreshes the offline cache. When the server
// cannot be reached the cached copy is returned, so browsing survives
// outages. Authorization failures are never masked by the cache.
func (l *clientLibraryService) Documents(ctx context.Context, collection models.Collection) ([]models.Document, error) {
	documents, err := l.adapter.Documents(ctx, collection)
	if err != nil {
		if adapterErrorIsFatal(err) {
			return nil, err
		}

		l.logger.Err(err).Str("collection", string(collection)).Msg("server unreachable, serving cached documents")

		cached, cacheErr := l.cache.CachedDocuments(ctx, collection)
		if cacheErr != nil {
			return nil, fmt.Errorf("server unreachable and cache read failed: %w", cacheErr)
		}
		return cached, nil
	}

	if cacheErr := l.cache.ReplaceDocuments(ctx, collection, documents); cacheErr != nil {
		l.logger.Err(cacheErr).Str("collection", string(collection)).Msg("cache refresh failed")
	}

	return documents, nil
}

// Update implements [ClientLibraryService]. After a successful refresh the
// new server state is read back and cached.
func (l *clientLibraryService) Update(ctx context.Context, collection models.Collection, page string) ([]models.Document, error) {
	if err := l.adapter.UpdateDatabase(ctx, collection, page); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpdateOnServer, err)
	}

	return l.Documents(ctx, collection)
}

// adapterErrorIsFatal reports whether a server error must be surfaced instead
// of falling back to the cache. Rejections the server made deliberately
// (auth, validation) stay visible; only transport-level failures degrade to
// cached data.
func adapterErrorIsFatal(err error) bool {
	for _, target := range []error{
		adapter.ErrUnauthorized,
		adapter.ErrForbidden,
		adapter.ErrBadRequest,
		adapter.ErrNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
