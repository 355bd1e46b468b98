package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/geocoder89/userhub/internal/config"
	"github.com/geocoder89/userhub/internal/domain/user"
)

type UsersService interface {
	Find(ctx context.Context, email *string) ([]user.User, error)
	FindOne(ctx context.Context, id int64) (user.User, error)
	Create(ctx context.Context, email, password string) (user.User, error)
	Update(ctx context.Context, id int64, req user.UpdateUserRequest) (user.User, error)
	Remove(ctx context.Context, id int64) (user.User, error)
}

type UsersHandler struct {
	svc    UsersService
	policy config.ValidationPolicy
}

func NewUsersHandler(svc UsersService, policy config.ValidationPolicy) *UsersHandler {
	return &UsersHandler{svc: svc, policy: policy}
}

// parseID coerces the :id path segment. Ids start at 1, so a non-numeric
// segment maps to 0 and falls through to the 404 path like any missing id.
func parseID(raw string) int64 {
	id, err := strconv.ParseInt(raw, 10, 64)

	if err != nil {
		return 0
	}

	return id
}

func (h *UsersHandler) ListUsers(ctx *gin.Context) {
	var emailFilter *string

	if email, ok := ctx.GetQuery("email"); ok {
		emailFilter = &email
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	users, err := h.svc.Find(cctx, emailFilter)

	if err != nil {
		RespondInternal(ctx, "Could not list users")
		return
	}

	ctx.JSON(http.StatusOK, user.NewViews(users))
}

func (h *UsersHandler) GetUser(ctx *gin.Context) {
	rawID := ctx.Param("id")

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	u, err := h.svc.FindOne(cctx, parseID(rawID))

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, fmt.Sprintf("User with id %s not found", rawID))
			return
		}

		RespondInternal(ctx, "Could not fetch user")
		return
	}

	ctx.JSON(http.StatusOK, user.NewView(u))
}

func (h *UsersHandler) SignUp(ctx *gin.Context) {
	var req user.CreateUserRequest

	if !BindJSON(ctx, &req, h.policy) {
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	// the created record is deliberately not returned; clients only see the 201
	_, err := h.svc.Create(cctx, req.Email, req.Password)

	if err != nil {
		RespondInternal(ctx, "Could not create user")
		return
	}

	ctx.Status(http.StatusCreated)
}

func (h *UsersHandler) UpdateUser(ctx *gin.Context) {
	rawID := ctx.Param("id")

	var req user.UpdateUserRequest

	if !BindJSON(ctx, &req, h.policy) {
		return
	}

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	u, err := h.svc.Update(cctx, parseID(rawID), req)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, fmt.Sprintf("User with id %s not found", rawID))
			return
		}

		RespondInternal(ctx, "Could not update user")
		return
	}

	ctx.JSON(http.StatusOK, user.NewView(u))
}

func (h *UsersHandler) DeleteUser(ctx *gin.Context) {
	rawID := ctx.Param("id")

	cctx, cancel := config.WithTimeout(2 * time.Second)

	defer cancel()

	u, err := h.svc.Remove(cctx, parseID(rawID))

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, fmt.Sprintf("User with id %s not found", rawID))
			return
		}

		RespondInternal(ctx, "Could not delete user")
		return
	}

	ctx.JSON(http.StatusOK, user.NewView(u))
}
