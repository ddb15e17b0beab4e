package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pgx connection pool and verifies it with a ping
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// Migrate creates the schema if it does not exist yet.
//
// order_items.food_id carries no foreign key on purpose: it is a weak
// reference so a food can be deleted while delivered or cancelled
// orders still point at it. The frozen food_* columns keep those
// orders displayable.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS foods (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(50) NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			description VARCHAR(200) NOT NULL,
			category VARCHAR(50) NOT NULL DEFAULT 'main-course'
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id BIGSERIAL PRIMARY KEY,
			customer_name TEXT NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
			total_price DOUBLE PRECISION NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id BIGSERIAL PRIMARY KEY,
			order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			quantity INT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			food_id BIGINT,
			food_name TEXT NOT NULL,
			food_description TEXT NOT NULL,
			food_price DOUBLE PRECISION NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items (order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_food_id ON order_items (food_id)`,
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username VARCHAR(50) NOT NULL UNIQUE,
			email VARCHAR(100) NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role VARCHAR(20) NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
