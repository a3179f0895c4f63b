package reaction

import "context"

// Repository defines persistence for one reactable item type. FindByID
// returns ErrNotFound for a missing id. Save persists counters and
// membership as one atomic write and returns ErrConflict when the store
// detects a concurrent update; it must never partially apply.
type Repository[T Reactable] interface {
	FindByID(ctx context.Context, id int64) (T, error)
	Save(ctx context.Context, item T) (T, error)
}
