package service

import (
	"context"
	"log/slog"

	"github.com/geocoder89/userhub/internal/domain/user"
)

// Store is the persistence surface the service needs. Implemented by
// repo/postgres and repo/memory.
type Store interface {
	List(ctx context.Context, email *string) ([]user.User, error)
	GetByID(ctx context.Context, id int64) (user.User, error)
	Create(ctx context.Context, email, password string) (user.User, error)
	Update(ctx context.Context, id int64, req user.UpdateUserRequest) (user.User, error)
	Delete(ctx context.Context, id int64) (user.User, error)
}

type Users struct {
	store Store
	log   *slog.Logger
}

func NewUsers(store Store, log *slog.Logger) *Users {
	return &Users{store: store, log: log}
}

// Find returns every user, or only those whose email matches exactly when a
// filter is given. Order is store-defined.
func (s *Users) Find(ctx context.Context, email *string) ([]user.User, error) {
	return s.store.List(ctx, email)
}

// FindOne returns user.ErrNotFound for a missing id; absence is a normal
// outcome for callers to interpret, not a failure of the service.
func (s *Users) FindOne(ctx context.Context, id int64) (user.User, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Users) Create(ctx context.Context, email, password string) (user.User, error) {
	u, err := s.store.Create(ctx, email, password)

	if err != nil {
		return user.User{}, err
	}

	s.log.InfoContext(ctx, "user inserted", "id", u.ID)

	return u, nil
}

func (s *Users) Update(ctx context.Context, id int64, req user.UpdateUserRequest) (user.User, error) {
	u, err := s.store.Update(ctx, id, req)

	if err != nil {
		return user.User{}, err
	}

	s.log.InfoContext(ctx, "user updated", "id", u.ID)

	return u, nil
}

// Remove deletes the record and returns its last known state.
func (s *Users) Remove(ctx context.Context, id int64) (user.User, error) {
	u, err := s.store.Delete(ctx, id)

	if err != nil {
		return user.User{}, err
	}

	s.log.InfoContext(ctx, "user removed", "id", u.ID)

	return u, nil
}
