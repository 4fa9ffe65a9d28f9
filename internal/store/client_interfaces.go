package store

import (
	"context"

	"github.com/ndanilov/shelf-viewer/models"
)

// LocalDocumentCache is the client-side offline cache of collection
// documents. It mirrors whatever the server returned last, so browsing keeps
// working when the server is unreachable.
type LocalDocumentCache interface {
	// ReplaceDocuments atomically replaces the cached contents of a
	// collection with documents.
	ReplaceDocuments(ctx context.Context, collection models.Collection, documents []models.Document) error

	// CachedDocuments returns the cached documents of a collection ordered
	// by title.
	CachedDocuments(ctx context.Context, collection models.Collection) ([]models.Document, error)
}
