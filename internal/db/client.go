package db

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/mealbridge/mealbridge/internal/config"
)

func NewDb(ctx context.Context) (*Database, error) {
	pool, err := pgxpool.Connect(ctx, config.DatabaseDSN())
	if err != nil {
		return nil, err
	}
	return NewDatabase(pool), nil
}
