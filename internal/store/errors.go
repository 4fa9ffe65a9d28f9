package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should match them with [errors.Is].
var (
	// ErrUsernameTaken is returned when an insert fails because an account
	// with the same username already exists. The unique constraint on the
	// users table is the only mutual exclusion concurrent sign-ups need:
	// exactly one insert wins, every other attempt observes this error.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound is returned when a lookup matches no account.
	ErrUserNotFound = errors.New("no user was found")

	// ErrDocumentsNotSaved is returned when an upsert completes without a
	// driver error but affected zero rows.
	ErrDocumentsNotSaved = errors.New("documents were not saved")
)

// Low-level database operation errors, returned (or wrapped) when a SQL
// operation fails before any domain logic applies.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when a transaction cannot start.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails; the
	// transaction is considered rolled back at that point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
