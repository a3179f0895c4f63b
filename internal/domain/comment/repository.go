package comment

import (
	"context"

	"github.com/forum-hub/forum-hub/internal/domain/reaction"
)

// Repository defines persistence for comments.
type Repository interface {
	reaction.Repository[*Comment]
	Create(ctx context.Context, c *Comment) error
	ListByTopic(ctx context.Context, topicID int64) ([]*Comment, error)
}
