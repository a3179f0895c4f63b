package reaction

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/forum-hub/forum-hub/internal/domain/comment"
	domain "github.com/forum-hub/forum-hub/internal/domain/reaction"
	"github.com/forum-hub/forum-hub/internal/domain/reaction/mocks"
)

func newComment(id int64) *comment.Comment {
	c := comment.New(1, uuid.New(), "text")
	c.ID = id
	return c
}

func TestToggleLikeAddsLike(t *testing.T) {
	repo := &mocks.MockRepository[*comment.Comment]{}
	svc := NewService[*comment.Comment](repo, zerolog.Nop())

	ctx := context.Background()
	userID := uuid.New()
	c := newComment(7)

	repo.On("FindByID", ctx, int64(7)).Return(c, nil)
	repo.On("Save", ctx, mock.Anything).Return(c, nil)

	updated, err := svc.ToggleLike(ctx, 7, userID)

	require.NoError(t, err)
	assert.Equal(t, 1, updated.LikeCount)
	assert.Equal(t, domain.VoteLiked, updated.ReactionState().VoteOf(userID))
	assert.True(t, updated.ReactionState().Consistent())
	repo.AssertExpectations(t)
}

func TestToggleDislikeMovesExistingLike(t *testing.T) {
	repo := &mocks.MockRepository[*comment.Comment]{}
	svc := NewService[*comment.Comment](repo, zerolog.Nop())

	ctx := context.Background()
	userID := uuid.New()
	c := newComment(7)
	c.ReactionState().ToggleLike(userID)

	repo.On("FindByID", ctx, int64(7)).Return(c, nil)
	repo.On("Save", ctx, mock.Anything).Return(c, nil)

	updated, err := svc.ToggleDislike(ctx, 7, userID)

	require.NoError(t, err)
	assert.Equal(t, 0, updated.LikeCount)
	assert.Equal(t, 1, updated.DislikeCount)
	assert.Equal(t, domain.VoteDisliked, updated.ReactionState().VoteOf(userID))
	repo.AssertExpectations(t)
}

func TestToggleLikeNotFound(t *testing.T) {
	repo := &mocks.MockRepository[*comment.Comment]{}
	svc := NewService[*comment.Comment](repo, zerolog.Nop())

	ctx := context.Background()
	repo.On("FindByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)

	_, err := svc.ToggleLike(ctx, 99, uuid.New())

	require.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestToggleLikePersistenceFailure(t *testing.T) {
	repo := &mocks.MockRepository[*comment.Comment]{}
	svc := NewService[*comment.Comment](repo, zerolog.Nop())

	ctx := context.Background()
	c := newComment(7)
	saveErr := fmt.Errorf("save comment: %w", errors.New("connection reset"))

	repo.On("FindByID", ctx, int64(7)).Return(c, nil)
	repo.On("Save", ctx, mock.Anything).Return(nil, saveErr)

	_, err := svc.ToggleLike(ctx, 7, uuid.New())

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrConflict)
}

func TestToggleLikeRetriesOnConflict(t *testing.T) {
	repo := &mocks.MockRepository[*comment.Comment]{}
	svc := NewService[*comment.Comment](repo, zerolog.Nop())

	ctx := context.Background()
	userID := uuid.New()
	c := newComment(7)

	repo.On("FindByID", ctx, int64(7)).Return(c, nil)
	repo.On("Save", ctx, mock.Anything).Return(nil, domain.ErrConflict).Twice()
	repo.On("Save", ctx, mock.Anything).Return(c, nil).Once()

	updated, err := svc.ToggleLike(ctx, 7, userID)

	require.NoError(t, err)
	require.NotNil(t, updated)
	repo.AssertNumberOfCalls(t, "FindByID", 3)
	repo.AssertNumberOfCalls(t, "Save", 3)
}

func TestToggleLikeSurfacesExhaustedConflict(t *testing.T) {
	repo := &mocks.MockRepository[*comment.Comment]{}
	svc := NewService[*comment.Comment](repo, zerolog.Nop())

	ctx := context.Background()
	repo.On("FindByID", ctx, int64(7)).Return(newComment(7), nil)
	repo.On("Save", ctx, mock.Anything).Return(nil, domain.ErrConflict)

	_, err := svc.ToggleLike(ctx, 7, uuid.New())

	require.ErrorIs(t, err, domain.ErrConflict)
	repo.AssertNumberOfCalls(t, "Save", maxConflictRetries+1)
}

// fakeRepo is a versioned in-memory store: Save fails with ErrConflict
// when the caller's copy is stale, the way the postgres repositories do.
type fakeRepo struct {
	mu       sync.Mutex
	comments map[int64]*comment.Comment
}

func newFakeRepo(items ...*comment.Comment) *fakeRepo {
	f := &fakeRepo{comments: make(map[int64]*comment.Comment)}
	for _, c := range items {
		f.comments[c.ID] = c
	}
	return f
}

func cloneComment(c *comment.Comment) *comment.Comment {
	cp := *c
	cp.LikedBy = append([]uuid.UUID(nil), c.LikedBy...)
	cp.DislikedBy = append([]uuid.UUID(nil), c.DislikedBy...)
	return &cp
}

func (f *fakeRepo) FindByID(ctx context.Context, id int64) (*comment.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.comments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneComment(c), nil
}

func (f *fakeRepo) Save(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, ok := f.comments[c.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if cur.Version != c.Version {
		return nil, domain.ErrConflict
	}
	c.Version++
	f.comments[c.ID] = cloneComment(c)
	return c, nil
}

func TestConcurrentTogglesLoseNoUpdates(t *testing.T) {
	c := newComment(1)
	repo := newFakeRepo(c)
	svc := NewService[*comment.Comment](repo, zerolog.Nop())

	const users = 16
	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			userID := uuid.New()
			// conflicts are retry-eligible for the caller as well
			for {
				_, err := svc.ToggleLike(context.Background(), 1, userID)
				if err == nil {
					return
				}
				if !errors.Is(err, domain.ErrConflict) {
					t.Errorf("unexpected error: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	final, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, users, final.LikeCount)
	assert.Len(t, final.LikedBy, users)
	assert.True(t, final.ReactionState().Consistent())
}
