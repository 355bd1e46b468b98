package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/geocoder89/userhub/internal/domain/user"
	"github.com/geocoder89/userhub/internal/observability"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UsersRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewUsersRepo(pool *pgxpool.Pool, prom *observability.Prom) *UsersRepo {
	return &UsersRepo{pool: pool, prom: prom}
}

func (r *UsersRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (r *UsersRepo) List(ctx context.Context, email *string) ([]user.User, error) {
	query := `SELECT id, email, password FROM users`

	var args []interface{}

	if email != nil {
		query += ` WHERE email = $1`
		args = append(args, *email)
	}

	// order is not part of the contract; id keeps it stable
	query += ` ORDER BY id`

	var out []user.User

	err := r.observe("users.list", func() error {
		rows, err := r.pool.Query(ctx, query, args...)

		if err != nil {
			return err
		}

		defer rows.Close()

		out = make([]user.User, 0)

		for rows.Next() {
			var u user.User

			err = rows.Scan(&u.ID, &u.Email, &u.Password)

			if err != nil {
				return err
			}

			out = append(out, u)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (user.User, error) {
	var u user.User

	err := r.observe("users.get", func() error {
		return r.pool.QueryRow(
			ctx,
			`SELECT id, email, password FROM users WHERE id = $1`,
			id,
		).Scan(&u.ID, &u.Email, &u.Password)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}

		return user.User{}, err
	}

	return u, nil
}

func (r *UsersRepo) Create(ctx context.Context, email, password string) (user.User, error) {
	u := user.User{
		Email:    email,
		Password: password,
	}

	err := r.observe("users.create", func() error {
		return r.pool.QueryRow(
			ctx,
			`INSERT INTO users(email, password) VALUES($1, $2) RETURNING id`,
			email,
			password,
		).Scan(&u.ID)
	})

	if err != nil {
		return user.User{}, err
	}

	return u, nil
}

func (r *UsersRepo) Update(ctx context.Context, id int64, req user.UpdateUserRequest) (user.User, error) {
	var sets []string
	args := []interface{}{id}

	argsPosition := 2

	if req.Email != nil {
		sets = append(sets, fmt.Sprintf("email = $%d", argsPosition))
		args = append(args, *req.Email)
		argsPosition++
	}

	if req.Password != nil {
		sets = append(sets, fmt.Sprintf("password = $%d", argsPosition))
		args = append(args, *req.Password)
		argsPosition++
	}

	// empty patch is a no-op that still returns the record
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	query := `UPDATE users SET ` + strings.Join(sets, ", ") +
		` WHERE id = $1 RETURNING id, email, password`

	var u user.User

	err := r.observe("users.update", func() error {
		return r.pool.QueryRow(ctx, query, args...).Scan(&u.ID, &u.Email, &u.Password)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}

		return user.User{}, err
	}

	return u, nil
}

func (r *UsersRepo) Delete(ctx context.Context, id int64) (user.User, error) {
	var u user.User

	err := r.observe("users.delete", func() error {
		return r.pool.QueryRow(
			ctx,
			`DELETE FROM users WHERE id = $1 RETURNING id, email, password`,
			id,
		).Scan(&u.ID, &u.Email, &u.Password)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}

		return user.User{}, err
	}

	return u, nil
}
