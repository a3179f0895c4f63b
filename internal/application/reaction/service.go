package reaction

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	domain "github.com/forum-hub/forum-hub/internal/domain/reaction"
)

// maxConflictRetries bounds the read-compute-write loop when the store
// reports concurrent modification.
const maxConflictRetries = 3

// Service is the reaction state machine for one reactable item type. It
// enforces the three-state, mutually exclusive like/dislike model: the
// full next state is computed in memory, then persisted as one atomic
// save, so a partial transition is never observable.
type Service[T domain.Reactable] struct {
	repo   domain.Repository[T]
	logger zerolog.Logger
}

// NewService creates a reaction service.
func NewService[T domain.Reactable](repo domain.Repository[T], logger zerolog.Logger) *Service[T] {
	return &Service[T]{
		repo:   repo,
		logger: logger.With().Str("service", "reaction").Logger(),
	}
}

// ToggleLike applies one like action by userID against the item:
// None→Liked, Liked→None, Disliked→Liked.
func (s *Service[T]) ToggleLike(ctx context.Context, itemID int64, userID uuid.UUID) (T, error) {
	return s.toggle(ctx, itemID, userID, domain.VoteLiked)
}

// ToggleDislike applies one dislike action by userID against the item:
// None→Disliked, Disliked→None, Liked→Disliked.
func (s *Service[T]) ToggleDislike(ctx context.Context, itemID int64, userID uuid.UUID) (T, error) {
	return s.toggle(ctx, itemID, userID, domain.VoteDisliked)
}

// VoteOf reports the reaction userID currently holds against the item.
func (s *Service[T]) VoteOf(ctx context.Context, itemID int64, userID uuid.UUID) (domain.Vote, error) {
	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return domain.VoteNone, err
	}
	return item.ReactionState().VoteOf(userID), nil
}

// toggle runs the read-compute-write loop. On ErrConflict the item is
// re-read and the transition recomputed against the fresh state; any
// other failure propagates to the caller with the store unchanged.
func (s *Service[T]) toggle(ctx context.Context, itemID int64, userID uuid.UUID, action domain.Vote) (T, error) {
	var zero T
	for attempt := 0; ; attempt++ {
		item, err := s.repo.FindByID(ctx, itemID)
		if err != nil {
			return zero, err
		}

		state := item.ReactionState()
		var result domain.Vote
		if action == domain.VoteLiked {
			result = state.ToggleLike(userID)
		} else {
			result = state.ToggleDislike(userID)
		}

		saved, err := s.repo.Save(ctx, item)
		if err == nil {
			s.logger.Debug().
				Int64("item_id", itemID).
				Str("user_id", userID.String()).
				Str("vote", string(result)).
				Int("like_count", state.LikeCount).
				Int("dislike_count", state.DislikeCount).
				Msg("reaction toggled")
			return saved, nil
		}
		if errors.Is(err, domain.ErrConflict) && attempt < maxConflictRetries {
			s.logger.Debug().Int64("item_id", itemID).Int("attempt", attempt+1).Msg("save conflict, retrying")
			continue
		}
		return zero, err
	}
}
