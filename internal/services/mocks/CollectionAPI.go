// Code generated manually in mockery style for the service tests.

package mocks

import (
	"context"

	"github.com/backoffice-labs/store-admin/internal/models"
	"github.com/stretchr/testify/mock"
)

// CollectionAPI is a mock for service.CollectionAPI[T].
type CollectionAPI[T any] struct {
	mock.Mock
}

func (m *CollectionAPI[T]) List(ctx context.Context, req models.PageRequest) (*models.Page[T], error) {
	args := m.Called(ctx, req)

	var page *models.Page[T]
	if args.Get(0) != nil {
		page = args.Get(0).(*models.Page[T])
	}

	return page, args.Error(1)
}

func (m *CollectionAPI[T]) Create(ctx context.Context, payload any) (*T, error) {
	args := m.Called(ctx, payload)

	var entity *T
	if args.Get(0) != nil {
		entity = args.Get(0).(*T)
	}

	return entity, args.Error(1)
}

func (m *CollectionAPI[T]) Patch(ctx context.Context, id int64, payload any) (*T, error) {
	args := m.Called(ctx, id, payload)

	var entity *T
	if args.Get(0) != nil {
		entity = args.Get(0).(*T)
	}

	return entity, args.Error(1)
}

func (m *CollectionAPI[T]) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
