package topic

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	domain "github.com/forum-hub/forum-hub/internal/domain/topic"
)

// Service handles topic management and the fast-path like counter.
type Service struct {
	repo   domain.Repository
	logger zerolog.Logger
}

// NewService creates a topic service.
func NewService(repo domain.Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With().Str("service", "topic").Logger(),
	}
}

// CreateInput defines topic creation input.
type CreateInput struct {
	Title    string
	Content  string
	AuthorID uuid.UUID
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Topic, error) {
	t := domain.New(input.Title, input.Content, input.AuthorID)
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("topic_id", t.ID).Str("author_id", t.AuthorID.String()).Msg("topic created")
	return t, nil
}

func (s *Service) Get(ctx context.Context, topicID int64) (*domain.Topic, error) {
	return s.repo.FindByID(ctx, topicID)
}

func (s *Service) ListModerated(ctx context.Context, limit, offset int) ([]*domain.Topic, error) {
	return s.repo.ListModerated(ctx, limit, offset)
}

// IncrementLikes bumps the topic like counter without touching reaction
// membership. Callers throttle it through the session like guard; the
// counter is intentionally independent of the per-user toggle state.
func (s *Service) IncrementLikes(ctx context.Context, topicID int64) (int, error) {
	count, err := s.repo.IncrementLikes(ctx, topicID)
	if err != nil {
		return 0, err
	}
	s.logger.Debug().Int64("topic_id", topicID).Int("like_count", count).Msg("fast-path like applied")
	return count, nil
}
