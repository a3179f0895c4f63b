package topic

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_repository.go -package=mocks . Repository

import (
	"context"

	"github.com/forum-hub/forum-hub/internal/domain/reaction"
)

// Repository defines persistence for topics. IncrementLikes is the
// counter-only fast-path write guarded by the session like guard; it does
// not touch reaction membership.
type Repository interface {
	reaction.Repository[*Topic]
	Create(ctx context.Context, t *Topic) error
	ListModerated(ctx context.Context, limit, offset int) ([]*Topic, error)
	IncrementLikes(ctx context.Context, topicID int64) (int, error)
}
