package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geocoder89/userhub/internal/domain/user"
)

func strPtr(s string) *string { return &s }

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	repo := NewUsersRepo()
	ctx := context.Background()

	first, err := repo.Create(ctx, "a@b.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	second, err := repo.Create(ctx, "c@d.com", "pw2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	// deleting does not free the id for reuse
	_, err = repo.Delete(ctx, second.ID)
	require.NoError(t, err)

	third, err := repo.Create(ctx, "e@f.com", "pw3")
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.ID)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	repo := NewUsersRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, "a@b.com", got.Email)
	assert.Equal(t, "pw", got.Password)
}

func TestGetByIDMissing(t *testing.T) {
	repo := NewUsersRepo()

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestListFiltersByExactEmail(t *testing.T) {
	repo := NewUsersRepo()
	ctx := context.Background()

	_, err := repo.Create(ctx, "a@b.com", "pw")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "c@d.com", "pw2")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "a@b.com", "pw3")
	require.NoError(t, err)

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := repo.List(ctx, strPtr("a@b.com"))
	require.NoError(t, err)
	require.Len(t, filtered, 2)

	for _, u := range filtered {
		assert.Equal(t, "a@b.com", u.Email)
	}

	none, err := repo.List(ctx, strPtr("nobody@x.com"))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateChangesOnlyProvidedFields(t *testing.T) {
	repo := NewUsersRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, user.UpdateUserRequest{Email: strPtr("x@y.com")})
	require.NoError(t, err)

	assert.Equal(t, "x@y.com", updated.Email)
	assert.Equal(t, "pw", updated.Password)

	// empty patch is a no-op that still returns the record
	same, err := repo.Update(ctx, created.ID, user.UpdateUserRequest{})
	require.NoError(t, err)
	assert.Equal(t, updated, same)
}

func TestUpdateMissing(t *testing.T) {
	repo := NewUsersRepo()

	_, err := repo.Update(context.Background(), 42, user.UpdateUserRequest{Email: strPtr("x@y.com")})
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestDeleteReturnsLastStateAndIsTerminal(t *testing.T) {
	repo := NewUsersRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, "a@b.com", "pw")
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, deleted)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, user.ErrNotFound)

	_, err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, user.ErrNotFound)
}
