package reaction

import "errors"

var (
	// ErrNotFound is returned when the target item does not exist.
	ErrNotFound = errors.New("item not found")
	// ErrConflict is returned when the store detected a concurrent
	// modification of the item. Retry-eligible: re-read and recompute.
	ErrConflict = errors.New("concurrent modification detected")
)
