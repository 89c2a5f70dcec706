package tracker

import "errors"

// Sentinel errors returned by the store. Callers match with errors.Is;
// the returned error usually wraps one of these with the offending id.
var (
	// ErrNotFound means the operation targeted an id that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateID means create was called with an id that already
	// exists, including among soft-deleted records.
	ErrDuplicateID = errors.New("record id already exists")

	// ErrValidation means a field value failed validation (bad status,
	// empty id or name, update of a deleted record).
	ErrValidation = errors.New("validation failed")

	// ErrCycle means the mutation would make a record its own ancestor.
	ErrCycle = errors.New("parent cycle")
)
