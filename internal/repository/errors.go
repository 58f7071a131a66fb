package repository

import "github.com/agencyops/agencydesk/internal/domain/project"

// Sentinels live next to the Repository contract in the domain package;
// these aliases let backends and callers reference them without
// importing domain internals.
var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = project.ErrNotFound

	// ErrDuplicateID is returned when appending an ID already in the catalog
	ErrDuplicateID = project.ErrDuplicateID
)
