// Package store implements the persistence layer: a PostgreSQL-backed user
// repository and a document repository for the scraped collections.
package store

import (
	"context"
	"time"

	"github.com/ndanilov/shelf-viewer/models"
)

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. Returns ErrUsernameTaken when the unique username
	// constraint rejects the insert.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the account with the given username or
	// ErrUserNotFound when no such account exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// DocumentRepository reads and writes the scraped document collections.
type DocumentRepository interface {
	// ListDocuments returns all documents of a collection ordered by title.
	ListDocuments(ctx context.Context, collection models.Collection) ([]models.Document, error)

	// UpsertDocuments inserts the given documents, replacing any existing
	// row with the same (collection, source_id) pair.
	UpsertDocuments(ctx context.Context, docs ...models.Document) error

	// LastFetched returns the most recent fetch timestamp recorded for a
	// collection, or the zero time when the collection is empty.
	LastFetched(ctx context.Context, collection models.Collection) (time.Time, error)
}
