package service

import (
	"github.com/ndanilov/shelf-viewer/internal/config"
	"github.com/ndanilov/shelf-viewer/internal/fetcher"
	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/internal/store"
)

type Services struct {
	AuthService    AuthService
	LibraryService LibraryService
}

func NewServices(repositories *store.Repositories, fetchers fetcher.Fetchers, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repositories.Users, cfg.App, logger),
		LibraryService: NewLibraryService(repositories.Documents, fetchers, logger),
	}
}
