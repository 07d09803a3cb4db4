package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrProfileAlreadyExists is returned when an attempt to create a profile
	// fails because a row with the same user id or email already exists.
	ErrProfileAlreadyExists = errors.New("profile already exists")

	// ErrProfileNotFound is returned when a query expected to match a profile
	// row produces an empty result set. The credit ledger fails closed on it.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInsufficientCredits is returned by the conditional credit decrement
	// when the stored balance is below the requested cost. The balance is
	// left untouched in that case.
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrProjectNotFound is returned when an operation targets a project
	// (identified by id and user_id) that does not exist. Projects owned by
	// other users are reported identically so ownership is never leaked.
	ErrProjectNotFound = errors.New("project not found")

	// ErrProjectLimitReached is returned by the demo project store when a
	// create would exceed the fixed trial cap.
	ErrProjectLimitReached = errors.New("project limit reached")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
