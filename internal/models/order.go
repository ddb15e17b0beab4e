package models

// OrderStatus is the lifecycle state of an order.
//
// The usual progression is PENDING -> CONFIRMED -> PREPARING ->
// DELIVERED, with CANCELLED reachable from any non-terminal state.
// Updates accept any known status value; the progression is not
// enforced as a transition table.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusPreparing OrderStatus = "PREPARING"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Valid reports whether s is a known status value.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Active reports whether the status still blocks food deletion.
func (s OrderStatus) Active() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusPreparing
}

// Order represents a customer order
type Order struct {
	ID           int64       `json:"id"`
	CustomerName string      `json:"customerName"`
	Status       OrderStatus `json:"status"`
	TotalPrice   float64     `json:"totalPrice"`
	Items        []OrderItem `json:"items,omitempty"`
}

// OrderItem is a single line of an order. The food* fields freeze the
// referenced food's details at order time so later menu edits or
// deletions never change historical orders. FoodID is a weak
// reference: the food row may be deleted without touching this record.
type OrderItem struct {
	ID              int64   `json:"id"`
	OrderID         int64   `json:"orderId"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"` // food unit price * quantity, computed once
	FoodID          int64   `json:"foodId"`
	FoodName        string  `json:"foodName"`
	FoodDescription string  `json:"foodDescription"`
	FoodPrice       float64 `json:"foodPrice"` // unit price at order time
}

// OrderRequest is the checkout payload
type OrderRequest struct {
	CustomerName string             `json:"customerName"`
	Items        []OrderItemRequest `json:"items"`
}

// OrderItemRequest is a single cart line
type OrderItemRequest struct {
	FoodID   int64 `json:"foodId"`
	Quantity int   `json:"quantity"`
}

// UpdateOrderRequest carries a status change
type UpdateOrderRequest struct {
	Status OrderStatus `json:"status"`
}

// OrderResponse is the shape returned for every order read. Item
// fields are drawn from the stored snapshots, never from a live food
// lookup.
type OrderResponse struct {
	OrderID      int64               `json:"orderId"`
	CustomerName string              `json:"customerName"`
	Status       string              `json:"status"`
	TotalPrice   float64             `json:"totalPrice"`
	Items        []OrderItemResponse `json:"items"`
}

// OrderItemResponse is one line of an order response
type OrderItemResponse struct {
	FoodName string  `json:"foodName"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
