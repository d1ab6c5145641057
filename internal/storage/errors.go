package storage

import "github.com/pkg/errors"

// Failure kinds surfaced by stores. Callers discriminate with errors.Is
// rather than matching on message text.
var (
	// ErrNotFound means no conversation exists with the requested id.
	ErrNotFound = errors.New("conversation not found")

	// ErrStoreUnavailable means the backing storage could not be reached or
	// stayed contended past the bounded retry window. Transient.
	ErrStoreUnavailable = errors.New("conversation store unavailable")

	// ErrStoreCorrupt means the persisted schema is unreadable. Fatal, never
	// retried.
	ErrStoreCorrupt = errors.New("conversation store corrupt")
)
