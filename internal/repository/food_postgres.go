package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"food-ordering-backend/internal/models"
)

// PostgresFoodRepository implements FoodRepository on a pgx pool
type PostgresFoodRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresFoodRepository creates a Postgres-backed food repository
func NewPostgresFoodRepository(pool *pgxpool.Pool) *PostgresFoodRepository {
	return &PostgresFoodRepository{pool: pool}
}

func (r *PostgresFoodRepository) Create(ctx context.Context, food *models.Food) (*models.Food, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO foods (name, price, description, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, food.Name, food.Price, food.Description, food.Category).Scan(&food.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert food: %w", err)
	}
	return food, nil
}

func (r *PostgresFoodRepository) GetByID(ctx context.Context, id int64) (*models.Food, error) {
	var food models.Food
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, price, description, category FROM foods WHERE id = $1
	`, id).Scan(&food.ID, &food.Name, &food.Price, &food.Description, &food.Category)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w with id %d", ErrFoodNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get food: %w", err)
	}
	return &food, nil
}

func (r *PostgresFoodRepository) GetAll(ctx context.Context) ([]models.Food, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, price, description, category FROM foods ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	defer rows.Close()

	foods := make([]models.Food, 0)
	for rows.Next() {
		var food models.Food
		if err := rows.Scan(&food.ID, &food.Name, &food.Price, &food.Description, &food.Category); err != nil {
			return nil, fmt.Errorf("failed to scan food: %w", err)
		}
		foods = append(foods, food)
	}
	return foods, rows.Err()
}

func (r *PostgresFoodRepository) Update(ctx context.Context, food *models.Food) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE foods SET name = $1, price = $2, description = $3, category = $4 WHERE id = $5
	`, food.Name, food.Price, food.Description, food.Category, food.ID)
	if err != nil {
		return fmt.Errorf("failed to update food: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w with id %d", ErrFoodNotFound, food.ID)
	}
	return nil
}

// Delete removes the food after re-checking active references inside
// the same transaction. The guard check outside this call and the
// delete itself can race with a concurrent checkout; the in-tx check
// closes that window.
func (r *PostgresFoodRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var active bool
	err = tx.QueryRow(ctx, activeRefQuery, id).Scan(&active)
	if err != nil {
		return fmt.Errorf("failed to check order references: %w", err)
	}
	if active {
		return ErrFoodReferenced
	}

	tag, err := tx.Exec(ctx, `DELETE FROM foods WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete food: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w with id %d", ErrFoodNotFound, id)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// activeRefQuery checks live order status at call time, so a food
// referenced only by delivered or cancelled orders stays deletable.
const activeRefQuery = `
	SELECT EXISTS (
		SELECT 1 FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE oi.food_id = $1
		  AND o.status IN ('PENDING', 'CONFIRMED', 'PREPARING')
	)`

func (r *PostgresFoodRepository) HasOrderItems(ctx context.Context, foodID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM order_items WHERE food_id = $1)
	`, foodID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check order items: %w", err)
	}
	return exists, nil
}

func (r *PostgresFoodRepository) HasActiveOrderItems(ctx context.Context, foodID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, activeRefQuery, foodID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check active order items: %w", err)
	}
	return exists, nil
}
