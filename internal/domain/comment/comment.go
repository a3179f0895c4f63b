package comment

import (
	"time"

	"github.com/google/uuid"

	"github.com/forum-hub/forum-hub/internal/domain/reaction"
)

// Comment is a user comment under a topic.
type Comment struct {
	ID        int64     `json:"id"`
	TopicID   int64     `json:"topicId"`
	AuthorID  uuid.UUID `json:"authorId"`
	Text      string    `json:"text"`
	Version   int64     `json:"-"`
	CreatedAt time.Time `json:"createdAt"`

	reaction.State
}

func New(topicID int64, authorID uuid.UUID, text string) *Comment {
	return &Comment{
		TopicID:   topicID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}

func (c *Comment) ItemID() int64 {
	return c.ID
}

func (c *Comment) ReactionState() *reaction.State {
	return &c.State
}
