package service

import (
	"context"
	"errors"
	"strings"

	"food-ordering-backend/internal/apperr"
	"food-ordering-backend/internal/models"
	"food-ordering-backend/internal/repository"
)

// OrderService handles the checkout workflow and order lifecycle
type OrderService struct {
	repo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// Checkout turns a cart into a persisted order. Each line freezes the
// food's current name, description and unit price into the order item,
// and the order total is the sum of line prices. The write sequence is
// one transaction: an unknown food id fails the whole checkout and
// leaves nothing behind.
func (s *OrderService) Checkout(ctx context.Context, req models.OrderRequest) (*models.OrderResponse, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, apperr.Validation("customer name is required")
	}
	if len(req.Items) == 0 {
		return nil, apperr.Validation("order must contain at least one item")
	}
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return nil, apperr.Validation("quantity must be positive for food id %d", line.FoodID)
		}
	}

	order, err := s.repo.Checkout(ctx, req.CustomerName, req.Items)
	if err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return nil, apperr.NotFound("%s", err.Error())
		}
		return nil, apperr.Storage(err, "failed to create order")
	}

	return mapToResponse(order), nil
}

// GetOrder returns one order in response shape
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*models.OrderResponse, error) {
	order, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, apperr.NotFound("order not found with id %d", id)
	}
	if err != nil {
		return nil, apperr.Storage(err, "failed to get order")
	}
	return mapToResponse(order), nil
}

// ListOrders returns all orders in response shape
func (s *OrderService) ListOrders(ctx context.Context) ([]models.OrderResponse, error) {
	orders, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperr.Storage(err, "failed to list orders")
	}

	responses := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *mapToResponse(&orders[i]))
	}
	return responses, nil
}

// UpdateStatus overwrites the order status. Any known status value is
// accepted; the PENDING -> CONFIRMED -> PREPARING -> DELIVERED
// progression is not enforced.
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.OrderResponse, error) {
	if !status.Valid() {
		return nil, apperr.Validation("unknown order status %q", status)
	}

	order, err := s.repo.UpdateStatus(ctx, id, status)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, apperr.NotFound("order not found with id %d", id)
	}
	if err != nil {
		return nil, apperr.Storage(err, "failed to update order")
	}
	return mapToResponse(order), nil
}

// DeleteOrder removes an order and, through ownership, all its items.
// Deleting an order is always permitted.
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return apperr.NotFound("order not found with id %d", id)
	}
	if err != nil {
		return apperr.Storage(err, "failed to delete order")
	}
	return nil
}

// mapToResponse builds the response shape from the order and its item
// snapshots. Food names come from the frozen snapshot, so the response
// stays correct after the menu changes or the food is deleted.
func mapToResponse(order *models.Order) *models.OrderResponse {
	items := make([]models.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, models.OrderItemResponse{
			FoodName: item.FoodName,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return &models.OrderResponse{
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		Status:       string(order.Status),
		TotalPrice:   order.TotalPrice,
		Items:        items,
	}
}
