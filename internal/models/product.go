package models

import "time"

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	CategoryID  int64   `json:"categoryId"`
	// CategoryName is denormalized by the server for display.
	CategoryName string    `json:"categoryName"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ProductPayload struct {
	Name        string  `json:"name" validate:"required,max=160"`
	Description string  `json:"description,omitempty" validate:"max=255"`
	Price       float64 `json:"price" validate:"gte=0"`
	CategoryID  int64   `json:"categoryId" validate:"required"`
}
