package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/forum-hub/forum-hub/internal/domain/reaction"
)

// MockRepository is a mock implementation of reaction.Repository.
type MockRepository[T reaction.Reactable] struct {
	mock.Mock
}

func (m *MockRepository[T]) FindByID(ctx context.Context, id int64) (T, error) {
	args := m.Called(ctx, id)
	var zero T
	if args.Get(0) == nil {
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

func (m *MockRepository[T]) Save(ctx context.Context, item T) (T, error) {
	args := m.Called(ctx, item)
	var zero T
	if args.Get(0) == nil {
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}
