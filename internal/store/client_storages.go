package store

import (
	"context"
	"fmt"

	"github.com/ndanilov/shelf-viewer/internal/config"
	"github.com/ndanilov/shelf-viewer/internal/logger"
)

// ClientStorages groups the client-side repositories into a single value that
// can be passed around the client service layer.
type ClientStorages struct {
	// DocumentCache is the SQLite-backed offline cache of collection
	// documents.
	DocumentCache LocalDocumentCache
}

// NewClientStorages opens the SQLite cache at cfg.DB.DSN (creating the file
// and schema if needed) and returns the wired client storage layer.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	ctx := context.Background()

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	cache, err := NewLocalDocumentCache(ctx, db, logger)
	if err != nil {
		return nil, fmt.Errorf("cache schema init error: %w", err)
	}

	return &ClientStorages{DocumentCache: cache}, nil
}
