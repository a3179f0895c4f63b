package comment

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	domain "github.com/forum-hub/forum-hub/internal/domain/comment"
)

// Service handles comment management.
type Service struct {
	repo   domain.Repository
	logger zerolog.Logger
}

// NewService creates a comment service.
func NewService(repo domain.Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With().Str("service", "comment").Logger(),
	}
}

// CreateInput defines comment creation input.
type CreateInput struct {
	TopicID  int64
	AuthorID uuid.UUID
	Text     string
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Comment, error) {
	c := domain.New(input.TopicID, input.AuthorID, input.Text)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("comment_id", c.ID).Int64("topic_id", c.TopicID).Msg("comment created")
	return c, nil
}

func (s *Service) Get(ctx context.Context, commentID int64) (*domain.Comment, error) {
	return s.repo.FindByID(ctx, commentID)
}

func (s *Service) ListByTopic(ctx context.Context, topicID int64) ([]*domain.Comment, error) {
	return s.repo.ListByTopic(ctx, topicID)
}
