package store

import "github.com/ndanilov/shelf-viewer/internal/logger"

// Repositories bundles every persistence-layer dependency the service
// layer needs.
type Repositories struct {
	Users     UserRepository
	Documents DocumentRepository
}

// NewRepositories constructs all repositories on top of a shared database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(db, logger),
		Documents: NewDocumentRepository(db, logger),
	}
}
