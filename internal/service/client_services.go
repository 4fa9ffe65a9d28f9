package service

import (
	"github.com/ndanilov/shelf-viewer/internal/adapter"
	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	LibraryService ClientLibraryService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter, logger),
		LibraryService: NewClientLibraryService(localStore, serverAdapter, logger),
	}
}
