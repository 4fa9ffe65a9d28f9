package store

import sq "github.com/Masterminds/squirrel"

const (
	createUser = `INSERT INTO users (username, hashed_password, first_name, last_name, email, add_date, role)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING user_id, username, hashed_password, first_name, last_name, email, add_date, role;`

	findUserByUsername = `SELECT user_id, username, hashed_password, first_name, last_name, email, add_date, role
    FROM users
    WHERE username = $1;`

	upsertDocument = `INSERT INTO documents (collection, source_id, title, url, payload, fetched_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    ON CONFLICT (collection, source_id) DO UPDATE
    SET title = EXCLUDED.title,
        url = EXCLUDED.url,
        payload = EXCLUDED.payload,
        fetched_at = EXCLUDED.fetched_at;`

	lastFetched = `SELECT MAX(fetched_at) FROM documents WHERE collection = $1;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// placeholder numbering.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
