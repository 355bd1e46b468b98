package user

import "errors"

var ErrNotFound = errors.New("user not found")

// User is the persisted record. The id is assigned by the store and is
// monotonically increasing; deleted ids are never handed out again.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Both fields optional; a field left out keeps its stored value.
type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitnil,email"`
	Password *string `json:"password" binding:"omitnil,min=1"`
}

// View is the outbound shape for every /users response. It exposes exactly
// id, email and password, whatever else the record may grow over time.
// Password intentionally not redacted; the wire contract returns it verbatim.
type View struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewView(u User) View {
	return View{
		ID:       u.ID,
		Email:    u.Email,
		Password: u.Password,
	}
}

func NewViews(users []User) []View {
	views := make([]View, 0, len(users))

	for _, u := range users {
		views = append(views, NewView(u))
	}

	return views
}
