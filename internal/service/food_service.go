package service

import (
	"context"
	"errors"
	"strings"

	"food-ordering-backend/internal/apperr"
	"food-ordering-backend/internal/models"
	"food-ordering-backend/internal/repository"
)

// Deletion-guard verdict reasons
const (
	reasonActiveOrders   = "Has pending or active orders (PENDING, CONFIRMED, or PREPARING)"
	reasonHistoricalOnly = "All orders are delivered/cancelled - safe to delete"
	reasonNoOrders       = "No orders found - safe to delete"
)

// FoodService handles menu business logic: CRUD validation and the
// deletion guard
type FoodService struct {
	repo repository.FoodRepository
}

// NewFoodService creates a new food service
func NewFoodService(repo repository.FoodRepository) *FoodService {
	return &FoodService{repo: repo}
}

// validateFood enforces the menu field constraints
func validateFood(req models.FoodRequest) error {
	name := strings.TrimSpace(req.Name)
	if len(name) < 2 || len(name) > 50 {
		return apperr.Validation("food name must be between 2 and 50 characters")
	}
	desc := strings.TrimSpace(req.Description)
	if len(desc) < 5 || len(desc) > 200 {
		return apperr.Validation("description must be between 5 and 200 characters")
	}
	if req.Price <= 0 {
		return apperr.Validation("price must be greater than 0")
	}
	return nil
}

// CreateFood validates and stores a new menu item
func (s *FoodService) CreateFood(ctx context.Context, req models.FoodRequest) (*models.Food, error) {
	if err := validateFood(req); err != nil {
		return nil, err
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = models.DefaultCategory
	}

	food := &models.Food{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Category:    category,
	}
	food, err := s.repo.Create(ctx, food)
	if err != nil {
		return nil, apperr.Storage(err, "failed to create food")
	}
	return food, nil
}

// GetFood returns a single menu item
func (s *FoodService) GetFood(ctx context.Context, id int64) (*models.Food, error) {
	food, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrFoodNotFound) {
		return nil, apperr.NotFound("food not found with id %d", id)
	}
	if err != nil {
		return nil, apperr.Storage(err, "failed to get food")
	}
	return food, nil
}

// ListFoods returns the full menu
func (s *FoodService) ListFoods(ctx context.Context) ([]models.Food, error) {
	foods, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, apperr.Storage(err, "failed to list foods")
	}
	return foods, nil
}

// UpdateFood validates and applies an admin edit to a menu item.
// Existing order items keep their frozen snapshot of the old values.
func (s *FoodService) UpdateFood(ctx context.Context, id int64, req models.FoodRequest) (*models.Food, error) {
	if err := validateFood(req); err != nil {
		return nil, err
	}

	food, err := s.GetFood(ctx, id)
	if err != nil {
		return nil, err
	}

	food.Name = req.Name
	food.Price = req.Price
	food.Description = req.Description
	if category := strings.TrimSpace(req.Category); category != "" {
		food.Category = category
	}

	if err := s.repo.Update(ctx, food); err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return nil, apperr.NotFound("food not found with id %d", id)
		}
		return nil, apperr.Storage(err, "failed to update food")
	}
	return food, nil
}

// CanDelete evaluates the deletion guard for a food against live order
// status: a food referenced only by delivered or cancelled orders is
// deletable, because those orders display from their frozen snapshots.
func (s *FoodService) CanDelete(ctx context.Context, id int64) (*models.DeleteCheck, error) {
	if _, err := s.GetFood(ctx, id); err != nil {
		return nil, err
	}

	hasActive, err := s.repo.HasActiveOrderItems(ctx, id)
	if err != nil {
		return nil, apperr.Storage(err, "failed to check active orders")
	}
	hasAny, err := s.repo.HasOrderItems(ctx, id)
	if err != nil {
		return nil, apperr.Storage(err, "failed to check orders")
	}

	check := &models.DeleteCheck{
		Allowed:         !hasActive,
		HasAnyOrders:    hasAny,
		HasActiveOrders: hasActive,
	}
	switch {
	case hasActive:
		check.Reason = reasonActiveOrders
	case hasAny:
		check.Reason = reasonHistoricalOnly
	default:
		check.Reason = reasonNoOrders
	}
	return check, nil
}

// DeleteFood removes a menu item unless the deletion guard rejects it.
// The repository re-checks references inside the delete transaction, so
// a checkout racing past the guard still surfaces as a conflict the
// caller may retry, never as corrupted data.
func (s *FoodService) DeleteFood(ctx context.Context, id int64) error {
	food, err := s.GetFood(ctx, id)
	if err != nil {
		return err
	}

	check, err := s.CanDelete(ctx, id)
	if err != nil {
		return err
	}
	if !check.Allowed {
		return apperr.Conflict("cannot delete '%s' because it has pending or active orders (PENDING, CONFIRMED, or PREPARING); wait until all orders are delivered or cancelled", food.Name)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrFoodReferenced):
			return apperr.Conflict("cannot delete '%s': an active order referenced it concurrently, retry once it completes", food.Name)
		case errors.Is(err, repository.ErrFoodNotFound):
			return apperr.NotFound("food not found with id %d", id)
		default:
			return apperr.Storage(err, "failed to delete food")
		}
	}
	return nil
}
