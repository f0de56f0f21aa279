package store

import "errors"

// Sentinel errors for engagement state failure modes.
// Callers should use errors.Is() to check for these.
var (
	// ErrNoEngagement indicates no current engagement could be
	// resolved (nothing has been created under the store root).
	ErrNoEngagement = errors.New("store: no engagement found")

	// ErrAlreadyExists indicates an engagement with the same
	// normalized name already exists.
	ErrAlreadyExists = errors.New("store: engagement already exists")

	// ErrNoWorkProgram indicates the engagement has no persisted work
	// program yet (plan has not run).
	ErrNoWorkProgram = errors.New("store: no work program generated")

	// ErrMalformedConfig indicates a persisted engagement record
	// exists but cannot be parsed. Distinct from ErrNoEngagement so
	// corruption is never silently treated as absence.
	ErrMalformedConfig = errors.New("store: malformed engagement record")
)
