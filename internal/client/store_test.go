package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/backoffice-labs/store-admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdersClient(t *testing.T) {
	ctx := context.Background()

	t.Run("Replace Issues PUT Without Status", func(t *testing.T) {
		// Arrange
		store, requests := newTestStore(t, http.StatusOK, `{"id":42,"status":"PAID"}`)

		// Act
		order, err := store.Orders.Replace(ctx, 42, models.OrderWritePayload{
			CustomerID: 3,
			Items:      []models.OrderItemPayload{{ProductID: 5, Quantity: 2}},
		})

		// Assert
		require.NoError(t, err)
		req := (*requests)[0]
		assert.Equal(t, http.MethodPut, req.Method)
		assert.Equal(t, "/orders/42", req.Path)
		assert.JSONEq(t, `{"customerId":3,"items":[{"productId":5,"quantity":2}]}`, string(req.Body))
		assert.NotContains(t, string(req.Body), "status")
		assert.Equal(t, int64(42), order.ID)
	})

	t.Run("UpdateStatus Hits Dedicated Endpoint", func(t *testing.T) {
		// Arrange
		store, requests := newTestStore(t, http.StatusOK, `{"id":42,"status":"PAID"}`)

		// Act
		order, err := store.Orders.UpdateStatus(ctx, 42, models.OrderStatusPaid)

		// Assert
		require.NoError(t, err)
		req := (*requests)[0]
		assert.Equal(t, http.MethodPatch, req.Method)
		assert.Equal(t, "/orders/42/status", req.Path)
		assert.JSONEq(t, `{"status":"PAID"}`, string(req.Body))
		assert.Equal(t, models.OrderStatusPaid, order.Status)
	})

	t.Run("Create Uses Collection POST", func(t *testing.T) {
		// Arrange
		store, requests := newTestStore(t, http.StatusCreated, `{"id":7,"status":"CREATED"}`)

		// Act
		order, err := store.Orders.Create(ctx, models.OrderWritePayload{
			CustomerID: 3,
			Items:      []models.OrderItemPayload{{ProductID: 5, Quantity: 2}},
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, (*requests)[0].Method)
		assert.Equal(t, "/orders", (*requests)[0].Path)
		assert.Equal(t, models.OrderStatusCreated, order.Status)
	})
}

func TestCustomersClient(t *testing.T) {
	ctx := context.Background()

	t.Run("OrderCounts Hits Aggregate Endpoint", func(t *testing.T) {
		// Arrange
		store, requests := newTestStore(t, http.StatusOK, `{"total":12,"open":4}`)

		// Act
		count, err := store.Customers.OrderCounts(ctx, 7)

		// Assert
		require.NoError(t, err)
		req := (*requests)[0]
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/customers/7/orders/count", req.Path)
		assert.Equal(t, int64(12), count.Total)
		assert.Equal(t, int64(4), count.Open)
	})
}
