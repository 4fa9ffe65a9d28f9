package store

const (
	createCacheSchema = `
		CREATE TABLE IF NOT EXISTS documents (
			collection  TEXT NOT NULL,
			source_id   TEXT NOT NULL,
			title       TEXT NOT NULL,
			url         TEXT NOT NULL DEFAULT '',
			payload     TEXT,
			fetched_at  TIMESTAMP NOT NULL,
			PRIMARY KEY (collection, source_id)
		);`

	deleteCachedDocuments = `
		DELETE FROM documents
		WHERE collection = $1;`

	insertCachedDocument = `
		INSERT INTO documents (
			collection,
			source_id,
			title,
			url,
			payload,
			fetched_at
		) VALUES ($1, $2, $3, $4, $5, $6);`

	getCachedDocuments = `
		SELECT
			source_id,
			title,
			url,
			payload,
			fetched_at
		FROM documents
		WHERE collection = $1
		ORDER BY title;`
)
