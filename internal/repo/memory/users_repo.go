package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/geocoder89/userhub/internal/domain/user"
)

// UsersRepo keeps users in process memory. Used by tests and by dev runs
// without a database. The id counter only moves forward, so deleted ids
// are never reused.
type UsersRepo struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]user.User
}

func NewUsersRepo() *UsersRepo {
	return &UsersRepo{
		items: make(map[int64]user.User),
	}
}

func (r *UsersRepo) List(ctx context.Context, email *string) ([]user.User, error) {
	r.mu.RLock()

	out := make([]user.User, 0, len(r.items))

	for _, u := range r.items {
		if email != nil && u.Email != *email {
			continue
		}
		out = append(out, u)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (user.User, error) {
	r.mu.RLock()
	u, ok := r.items[id]
	r.mu.RUnlock()

	if !ok {
		return user.User{}, user.ErrNotFound
	}

	return u, nil
}

func (r *UsersRepo) Create(ctx context.Context, email, password string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++

	u := user.User{
		ID:       r.nextID,
		Email:    email,
		Password: password,
	}

	r.items[u.ID] = u

	return u, nil
}

func (r *UsersRepo) Update(ctx context.Context, id int64, req user.UpdateUserRequest) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]

	if !ok {
		return user.User{}, user.ErrNotFound
	}

	if req.Email != nil {
		u.Email = *req.Email
	}

	if req.Password != nil {
		u.Password = *req.Password
	}

	r.items[id] = u

	return u, nil
}

func (r *UsersRepo) Delete(ctx context.Context, id int64) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]

	if !ok {
		return user.User{}, user.ErrNotFound
	}

	delete(r.items, id)

	return u, nil
}
