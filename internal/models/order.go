package models

import "time"

// OrderStatus is the order lifecycle state. The enumeration is closed
// and transitions are validated by the server, never by this client.
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "CREATED"
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

// OrderStatuses lists every status in selection order.
var OrderStatuses = []OrderStatus{
	OrderStatusCreated,
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusDelivered,
	OrderStatusCanceled,
}

type OrderItem struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int64   `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice,omitempty"`
	Subtotal    float64 `json:"subtotal,omitempty"`
}

type Order struct {
	ID           int64       `json:"id"`
	CustomerID   int64       `json:"customerId"`
	CustomerName string      `json:"customerName"`
	Items        []OrderItem `json:"items"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// OrderItemPayload is the write shape of one line item. Unit price and
// subtotal are always computed by the server.
type OrderItemPayload struct {
	ProductID int64 `json:"productId" validate:"required"`
	Quantity  int64 `json:"quantity" validate:"required,gt=0"`
}

// OrderWritePayload covers both POST /orders and PUT /orders/{id}.
// Status is deliberately absent: structural writes must not smuggle a
// status change past the transition checks of the status endpoint.
type OrderWritePayload struct {
	CustomerID int64              `json:"customerId" validate:"required"`
	Items      []OrderItemPayload `json:"items" validate:"required,min=1,dive"`
}

// StatusPayload is the body of PATCH /orders/{id}/status.
type StatusPayload struct {
	Status OrderStatus `json:"status" validate:"required,oneof=CREATED PENDING PAID DELIVERED CANCELED"`
}
