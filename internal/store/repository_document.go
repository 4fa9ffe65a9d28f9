package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ndanilov/shelf-viewer/internal/logger"
	"github.com/ndanilov/shelf-viewer/models"
)

// documentRepository is the PostgreSQL-backed implementation of
// [DocumentRepository]. Scraped entries live in a single "documents" table
// with a JSONB payload column; (collection, source_id) is unique, so a
// repeated fetch of the same entry replaces the stored version.
type documentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDocumentRepository constructs a [DocumentRepository] backed by the
// provided database connection and logger.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		db:     db,
		logger: logger,
	}
}

// ListDocuments returns every stored document of a collection, ordered by
// title for stable presentation.
func (r *documentRepository) ListDocuments(ctx context.Context, collection models.Collection) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("id", "collection", "source_id", "title", "url", "payload", "fetched_at").
		From("documents").
		Where("collection = ?", string(collection)).
		OrderBy("title ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.ListDocuments").Msg("error building list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.ListDocuments").Msg("error executing list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make([]models.Document, 0)
	for rows.Next() {
		var doc models.Document
		var rawPayload []byte

		if err = rows.Scan(&doc.ID, &doc.Collection, &doc.SourceID, &doc.Title, &doc.URL, &rawPayload, &doc.FetchedAt); err != nil {
			log.Err(err).Str("func", "*documentRepository.ListDocuments").Msg("error scanning document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if len(rawPayload) > 0 {
			if err = json.Unmarshal(rawPayload, &doc.Payload); err != nil {
				log.Err(err).Str("func", "*documentRepository.ListDocuments").Msg("error decoding document payload")
				return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
		}

		docs = append(docs, doc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return docs, nil
}

// UpsertDocuments stores the given documents inside a single transaction.
// Rows with a known (collection, source_id) pair are replaced.
func (r *documentRepository) UpsertDocuments(ctx context.Context, docs ...models.Document) error {
	if len(docs) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.UpsertDocuments").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var affected int64
	for _, doc := range docs {
		rawPayload, err := json.Marshal(doc.Payload)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		res, err := tx.ExecContext(ctx, upsertDocument,
			doc.Collection, doc.SourceID, doc.Title, doc.URL, rawPayload, doc.FetchedAt)
		if err != nil {
			log.Err(err).Str("func", "*documentRepository.UpsertDocuments").Msg("error executing upsert")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		affected += n
	}

	if affected == 0 {
		return ErrDocumentsNotSaved
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*documentRepository.UpsertDocuments").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// LastFetched returns the newest fetched_at timestamp of a collection, or
// the zero time for an empty collection.
func (r *documentRepository) LastFetched(ctx context.Context, collection models.Collection) (time.Time, error) {
	log := logger.FromContext(ctx)

	var last sql.NullTime
	row := r.db.QueryRowContext(ctx, lastFetched, string(collection))
	if err := row.Scan(&last); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, nil
		}
		log.Err(err).Str("func", "*documentRepository.LastFetched").Msg("error scanning last fetch time")
		return time.Time{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if !last.Valid {
		return time.Time{}, nil
	}

	return last.Time, nil
}
