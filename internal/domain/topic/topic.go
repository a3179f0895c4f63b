package topic

import (
	"time"

	"github.com/google/uuid"

	"github.com/forum-hub/forum-hub/internal/domain/reaction"
)

// Topic is a discussion thread. Topics await moderation before they show
// up in public listings.
type Topic struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  uuid.UUID `json:"authorId"`
	Moderated bool      `json:"moderated"`
	Version   int64     `json:"-"`
	CreatedAt time.Time `json:"createdAt"`

	reaction.State
}

func New(title, content string, authorID uuid.UUID) *Topic {
	return &Topic{
		Title:     title,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
	}
}

func (t *Topic) ItemID() int64 {
	return t.ID
}

func (t *Topic) ReactionState() *reaction.State {
	return &t.State
}
