package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/backoffice-labs/store-admin/internal/models"
)

// Store bundles the typed collections for the four back-office
// resources.
type Store struct {
	Categories *Collection[models.Category]
	Products   *Collection[models.Product]
	Customers  *CustomersClient
	Orders     *OrdersClient
}

func NewStore(client *Client) *Store {
	return &Store{
		Categories: NewCollection[models.Category](client, "categories"),
		Products:   NewCollection[models.Product](client, "products"),
		Customers:  &CustomersClient{Collection: NewCollection[models.Customer](client, "customers")},
		Orders:     &OrdersClient{Collection: NewCollection[models.Order](client, "orders")},
	}
}

// OrdersClient adds the two specialized order endpoints on top of the
// generic collection. Orders never use the generic Patch for
// structural fields.
type OrdersClient struct {
	*Collection[models.Order]
}

// Replace is the full structural update: customer and items only,
// never status.
func (o *OrdersClient) Replace(ctx context.Context, id int64, payload models.OrderWritePayload) (*models.Order, error) {

	var order models.Order

	if err := o.client.do(ctx, http.MethodPut, o.itemPath(id), nil, payload, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

// UpdateStatus hits the narrow status endpoint, which enforces the
// order state machine server-side.
func (o *OrdersClient) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {

	var order models.Order

	payload := models.StatusPayload{Status: status}

	if err := o.client.do(ctx, http.MethodPatch, o.itemPath(id)+"/status", nil, payload, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

type CustomersClient struct {
	*Collection[models.Customer]
}

// OrderCounts returns the total/open order aggregate for one customer.
func (c *CustomersClient) OrderCounts(ctx context.Context, customerID int64) (*models.CustomerOrderCount, error) {

	var count models.CustomerOrderCount

	path := fmt.Sprintf("%s/%d/orders/count", c.path, customerID)

	if err := c.client.do(ctx, http.MethodGet, path, nil, nil, &count); err != nil {
		return nil, err
	}

	return &count, nil
}
