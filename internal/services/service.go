package service

import (
	"context"

	"github.com/backoffice-labs/store-admin/internal/models"
)

// Sort orders used across the UI: lists show newest first, selection
// controls load alphabetically.
const (
	SortCreatedDesc = "createdAt,desc"
	SortNameAsc     = "name,asc"
)

// CollectionAPI is the slice of the remote client the entity services
// need. *client.Collection[T] satisfies it.
type CollectionAPI[T any] interface {
	List(ctx context.Context, req models.PageRequest) (*models.Page[T], error)
	Create(ctx context.Context, payload any) (*T, error)
	Patch(ctx context.Context, id int64, payload any) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// OrderAPI adds the two specialized order endpoints.
// *client.OrdersClient satisfies it.
type OrderAPI interface {
	List(ctx context.Context, req models.PageRequest) (*models.Page[models.Order], error)
	Create(ctx context.Context, payload any) (*models.Order, error)
	Replace(ctx context.Context, id int64, payload models.OrderWritePayload) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error)
	Delete(ctx context.Context, id int64) error
}

// CustomerAPI is what the lookup service needs from customers.
// *client.CustomersClient satisfies it.
type CustomerAPI interface {
	List(ctx context.Context, req models.PageRequest) (*models.Page[models.Customer], error)
	OrderCounts(ctx context.Context, customerID int64) (*models.CustomerOrderCount, error)
}
