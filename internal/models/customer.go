package models

import "time"

type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type CustomerPayload struct {
	Name  string `json:"name" validate:"required,max=120"`
	Email string `json:"email" validate:"required,email,max=180"`
	Phone string `json:"phone,omitempty" validate:"max=20"`
}

// CustomerOrderCount is the read-only aggregate behind
// GET /customers/{id}/orders/count. Open counts orders that are not in
// a terminal or paid state.
type CustomerOrderCount struct {
	Total int64 `json:"total"`
	Open  int64 `json:"open"`
}
