package repository

import (
	"context"
	"errors"

	"food-ordering-backend/internal/models"
)

var (
	ErrFoodNotFound  = errors.New("food not found")
	ErrOrderNotFound = errors.New("order not found")
	ErrUserNotFound  = errors.New("user not found")

	// ErrFoodReferenced is returned when a food delete is blocked by
	// order items whose orders are still active. Callers treat it as a
	// retryable conflict.
	ErrFoodReferenced = errors.New("food is referenced by active orders")
)

// FoodRepository defines data access for menu items
type FoodRepository interface {
	Create(ctx context.Context, food *models.Food) (*models.Food, error)
	GetByID(ctx context.Context, id int64) (*models.Food, error)
	GetAll(ctx context.Context) ([]models.Food, error)
	Update(ctx context.Context, food *models.Food) error

	// Delete removes the food after re-checking, inside the same
	// transaction, that no active order still references it. Returns
	// ErrFoodReferenced when the check fails.
	Delete(ctx context.Context, id int64) error

	// HasOrderItems reports whether any order item references the food.
	HasOrderItems(ctx context.Context, foodID int64) (bool, error)

	// HasActiveOrderItems reports whether any order item referencing
	// the food belongs to an order in PENDING, CONFIRMED or PREPARING.
	HasActiveOrderItems(ctx context.Context, foodID int64) (bool, error)
}

// OrderRepository defines data access for orders and their items.
// An order owns its items: deleting the order deletes them too.
type OrderRepository interface {
	// Checkout creates the order and its items in one transaction.
	// Each cart line resolves its food and freezes the food's
	// name/description/price into the item; the order total is the sum
	// of line prices. An unknown food id aborts the whole transaction
	// with ErrFoodNotFound, leaving nothing persisted.
	Checkout(ctx context.Context, customerName string, lines []models.OrderItemRequest) (*models.Order, error)

	GetByID(ctx context.Context, id int64) (*models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository defines data access for user accounts
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// HasAdmin reports whether any ADMIN account exists. Used by the
	// one-time bootstrap at startup.
	HasAdmin(ctx context.Context) (bool, error)
}
