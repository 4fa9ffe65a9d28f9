package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/models"
)

type localDocumentCache struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalDocumentCache initialises the SQLite-backed document cache,
// creating the schema if it does not exist yet.
func NewLocalDocumentCache(ctx context.Context, db *DB, logger *logger.Logger) (LocalDocumentCache, error) {
	if _, err := db.ExecContext(ctx, createCacheSchema); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return &localDocumentCache{db: db, logger: logger}, nil
}

// ReplaceDocuments implements [LocalDocumentCache]. The delete and the
// inserts run in one transaction, so readers never observe a half-replaced
// collection.
func (c *localDocumentCache) ReplaceDocuments(ctx context.Context, collection models.Collection, documents []models.Document) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err = tx.ExecContext(ctx, deleteCachedDocuments, string(collection)); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, document := range documents {
		payload, marshalErr := marshalPayload(document.Payload)
		if marshalErr != nil {
			return marshalErr
		}

		_, err = tx.ExecContext(ctx, insertCachedDocument,
			string(collection),
			document.SourceID,
			document.Title,
			document.URL,
			payload,
			document.FetchedAt,
		)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// CachedDocuments implements [LocalDocumentCache].
func (c *localDocumentCache) CachedDocuments(ctx context.Context, collection models.Collection) ([]models.Document, error) {
	rows, err := c.db.QueryContext(ctx, getCachedDocuments, string(collection))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var documents []models.Document
	for rows.Next() {
		var (
			document models.Document
			payload  sql.NullString
		)

		if err = rows.Scan(&document.SourceID, &document.Title, &document.URL, &payload, &document.FetchedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if payload.Valid && payload.String != "" {
			if err = json.Unmarshal([]byte(payload.String), &document.Payload); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
		}

		document.Collection = collection
		documents = append(documents, document)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return documents, nil
}

func marshalPayload(payload map[string]any) (sql.NullString, error) {
	if payload == nil {
		return sql.NullString{}, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("marshal document payload: %w", err)
	}

	return sql.NullString{String: string(raw), Valid: true}, nil
}
