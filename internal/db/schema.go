package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// BIGSERIAL keeps ids monotonic; a deleted id is never handed out again.
const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	email TEXT NOT NULL,
	password TEXT NOT NULL
)`

// EnsureSchema prepares the users table on startup. Idempotent, so every
// instance can run it without coordination.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, createUsersTable)

	return err
}
