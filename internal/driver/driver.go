package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const maxOpenConns = 10

// NewPgxPool opens a connection pool for the given DSN. The pool itself
// is lazy; use Ping to verify connectivity.
func NewPgxPool(dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("driver: parse config: %w", err)
	}
	config.MaxConns = maxOpenConns

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("driver: new pool: %w", err)
	}
	return pool, nil
}

// Ping verifies that the pool can reach the database.
func Ping(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return pool.Ping(ctx)
}
