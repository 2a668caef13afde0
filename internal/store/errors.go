package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPreferenceNotFound is returned when a preference key has never been
	// written.
	ErrPreferenceNotFound = errors.New("preference was not found")

	// ErrInvalidArtifactName is returned when an artifact name is empty or
	// contains path separators.
	ErrInvalidArtifactName = errors.New("invalid artifact name")

	// ErrWritingArtifact is returned when an artifact cannot be written to
	// the export directory.
	ErrWritingArtifact = errors.New("failed to write artifact")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
