package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"food-ordering-backend/internal/models"
)

// PostgresOrderRepository implements OrderRepository on a pgx pool
type PostgresOrderRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOrderRepository creates a Postgres-backed order repository
func NewPostgresOrderRepository(pool *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{pool: pool}
}

// Checkout runs the whole checkout write sequence in one transaction:
// insert the order, resolve each food and freeze its details into an
// item, then store the computed total. Any failure rolls the whole
// thing back, so a bad food id on line N never leaves an orphan order.
func (r *PostgresOrderRepository) Checkout(ctx context.Context, customerName string, lines []models.OrderItemRequest) (*models.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	order := &models.Order{
		CustomerName: customerName,
		Status:       models.StatusPending,
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (customer_name, status, total_price)
		VALUES ($1, $2, 0)
		RETURNING id
	`, order.CustomerName, order.Status).Scan(&order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	var total float64
	for _, line := range lines {
		var food models.Food
		err := tx.QueryRow(ctx, `
			SELECT id, name, price, description, category FROM foods WHERE id = $1
		`, line.FoodID).Scan(&food.ID, &food.Name, &food.Price, &food.Description, &food.Category)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w with id %d", ErrFoodNotFound, line.FoodID)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve food %d: %w", line.FoodID, err)
		}

		item := models.OrderItem{
			OrderID:         order.ID,
			Quantity:        line.Quantity,
			Price:           food.Price * float64(line.Quantity),
			FoodID:          food.ID,
			FoodName:        food.Name,
			FoodDescription: food.Description,
			FoodPrice:       food.Price,
		}
		err = tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, quantity, price, food_id, food_name, food_description, food_price)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, item.OrderID, item.Quantity, item.Price, item.FoodID, item.FoodName, item.FoodDescription, item.FoodPrice).Scan(&item.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert order item: %w", err)
		}

		total += item.Price
		order.Items = append(order.Items, item)
	}

	order.TotalPrice = total
	if _, err := tx.Exec(ctx, `UPDATE orders SET total_price = $1 WHERE id = $2`, total, order.ID); err != nil {
		return nil, fmt.Errorf("failed to update order total: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return order, nil
}

func (r *PostgresOrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := r.pool.QueryRow(ctx, `
		SELECT id, customer_name, status, total_price FROM orders WHERE id = $1
	`, id).Scan(&order.ID, &order.CustomerName, &order.Status, &order.TotalPrice)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w with id %d", ErrOrderNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.itemsForOrders(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	order.Items = items[id]
	return &order, nil
}

func (r *PostgresOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, customer_name, status, total_price FROM orders ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.ID, &order.CustomerName, &order.Status, &order.TotalPrice); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := r.itemsForOrders(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

func (r *PostgresOrderRepository) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w with id %d", ErrOrderNotFound, id)
	}
	return r.GetByID(ctx, id)
}

// Delete removes the order; its items go with it via ON DELETE CASCADE.
func (r *PostgresOrderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w with id %d", ErrOrderNotFound, id)
	}
	return nil
}

func (r *PostgresOrderRepository) itemsForOrders(ctx context.Context, orderIDs []int64) (map[int64][]models.OrderItem, error) {
	result := make(map[int64][]models.OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, order_id, quantity, price, COALESCE(food_id, 0), food_name, food_description, food_price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id
	`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.Quantity, &item.Price,
			&item.FoodID, &item.FoodName, &item.FoodDescription, &item.FoodPrice); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		result[item.OrderID] = append(result[item.OrderID], item)
	}
	return result, rows.Err()
}
