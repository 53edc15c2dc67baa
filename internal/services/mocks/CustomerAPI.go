// Code generated manually in mockery style for the service tests.

package mocks

import (
	"context"

	"github.com/backoffice-labs/store-admin/internal/models"
	"github.com/stretchr/testify/mock"
)

// CustomerAPI is a mock for service.CustomerAPI.
type CustomerAPI struct {
	mock.Mock
}

func (m *CustomerAPI) List(ctx context.Context, req models.PageRequest) (*models.Page[models.Customer], error) {
	args := m.Called(ctx, req)

	var page *models.Page[models.Customer]
	if args.Get(0) != nil {
		page = args.Get(0).(*models.Page[models.Customer])
	}

	return page, args.Error(1)
}

func (m *CustomerAPI) OrderCounts(ctx context.Context, customerID int64) (*models.CustomerOrderCount, error) {
	args := m.Called(ctx, customerID)

	var count *models.CustomerOrderCount
	if args.Get(0) != nil {
		count = args.Get(0).(*models.CustomerOrderCount)
	}

	return count, args.Error(1)
}
