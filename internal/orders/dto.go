package orders

import "time"

// ItemInput is one requested line in a checkout.
type ItemInput struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CheckoutInput is the request body for placing an order.
type CheckoutInput struct {
	DeviceID string      `json:"device_id"`
	Items    []ItemInput `json:"items"`
}

// OrderItemDTO snapshots one line of a placed order.
type OrderItemDTO struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// OrderDTO is the response shape for a placed order.
type OrderDTO struct {
	ID          int64          `json:"id"`
	DeviceID    string         `json:"device_id"`
	TotalAmount float64        `json:"total_amount"`
	Items       []OrderItemDTO `json:"items"`
	CreatedAt   time.Time      `json:"created_at"`
}
