package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against
// these values.
var (
	// ErrUserAlreadyExists is returned when the conditional insert of a new
	// account affects zero rows because the username is taken.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when a user lookup matches no row.
	ErrUserNotFound = errors.New("user not found")

	// ErrTokenNotFound is returned when a token lookup matches no row.
	ErrTokenNotFound = errors.New("token not found")

	// ErrPasswordNotFound is returned when a vault entry lookup scoped by
	// (id, user_id) matches no row.
	ErrPasswordNotFound = errors.New("password entry not found")
)

// Low-level database operation errors. These wrap driver failures that
// occur before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
