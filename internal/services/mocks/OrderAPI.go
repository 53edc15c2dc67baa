// Code generated manually in mockery style for the service tests.

package mocks

import (
	"context"

	"github.com/backoffice-labs/store-admin/internal/models"
	"github.com/stretchr/testify/mock"
)

// OrderAPI is a mock for service.OrderAPI.
type OrderAPI struct {
	mock.Mock
}

func (m *OrderAPI) List(ctx context.Context, req models.PageRequest) (*models.Page[models.Order], error) {
	args := m.Called(ctx, req)

	var page *models.Page[models.Order]
	if args.Get(0) != nil {
		page = args.Get(0).(*models.Page[models.Order])
	}

	return page, args.Error(1)
}

func (m *OrderAPI) Create(ctx context.Context, payload any) (*models.Order, error) {
	args := m.Called(ctx, payload)

	var order *models.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*models.Order)
	}

	return order, args.Error(1)
}

func (m *OrderAPI) Replace(ctx context.Context, id int64, payload models.OrderWritePayload) (*models.Order, error) {
	args := m.Called(ctx, id, payload)

	var order *models.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*models.Order)
	}

	return order, args.Error(1)
}

func (m *OrderAPI) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {
	args := m.Called(ctx, id, status)

	var order *models.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*models.Order)
	}

	return order, args.Error(1)
}

func (m *OrderAPI) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
