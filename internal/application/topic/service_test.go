package topic

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/forum-hub/forum-hub/internal/domain/reaction"
	domainTopic "github.com/forum-hub/forum-hub/internal/domain/topic"
	topicMocks "github.com/forum-hub/forum-hub/internal/domain/topic/mocks"
)

func TestCreateTopic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := topicMocks.NewMockRepository(ctrl)
	svc := NewService(repo, zerolog.Nop())

	ctx := context.Background()
	authorID := uuid.New()

	repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tp *domainTopic.Topic) error {
			assert.Equal(t, "Go generics", tp.Title)
			assert.Equal(t, authorID, tp.AuthorID)
			assert.False(t, tp.Moderated)
			tp.ID = 42
			return nil
		})

	created, err := svc.Create(ctx, CreateInput{Title: "Go generics", Content: "body", AuthorID: authorID})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
}

func TestIncrementLikesReturnsNewCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := topicMocks.NewMockRepository(ctrl)
	svc := NewService(repo, zerolog.Nop())

	ctx := context.Background()
	repo.EXPECT().IncrementLikes(ctx, int64(5)).Return(12, nil)

	count, err := svc.IncrementLikes(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, 12, count)
}

func TestIncrementLikesMissingTopic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := topicMocks.NewMockRepository(ctrl)
	svc := NewService(repo, zerolog.Nop())

	ctx := context.Background()
	repo.EXPECT().IncrementLikes(ctx, int64(5)).Return(0, reaction.ErrNotFound)

	_, err := svc.IncrementLikes(ctx, 5)

	require.ErrorIs(t, err, reaction.ErrNotFound)
}

func TestListModerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := topicMocks.NewMockRepository(ctrl)
	svc := NewService(repo, zerolog.Nop())

	ctx := context.Background()
	topics := []*domainTopic.Topic{{ID: 1, Moderated: true}, {ID: 2, Moderated: true}}
	repo.EXPECT().ListModerated(ctx, 20, 0).Return(topics, nil)

	got, err := svc.ListModerated(ctx, 20, 0)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
