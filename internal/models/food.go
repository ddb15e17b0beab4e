package models

// Food represents a menu item available for order
type Food struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// DefaultCategory is assigned when a food is created without one.
const DefaultCategory = "main-course"

// FoodRequest is the payload for creating or updating a food
type FoodRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category,omitempty"`
}

// DeleteCheck is the deletion-guard verdict for a food.
// Allowed is false only while the food is referenced by an order
// that is still pending, confirmed, or preparing.
type DeleteCheck struct {
	Allowed         bool   `json:"canDelete"`
	HasAnyOrders    bool   `json:"hasAnyOrders"`
	HasActiveOrders bool   `json:"hasActiveOrders"`
	Reason          string `json:"reason"`
}
