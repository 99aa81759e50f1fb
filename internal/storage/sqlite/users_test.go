package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newspulse/pulse/internal/core"
)

func TestUsers_CreateAndFetch(t *testing.T) {
	db := newTestDB(t)
	repo := NewUsersRepo(db)
	ctx := context.Background()

	id, err := repo.CreateUser(ctx, " alice ", "Alice@Example.COM", "hash")
	require.NoError(t, err)

	user, err := repo.UserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email, "email stored lowercased")

	byID, err := repo.UserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, user.Username, byID.Username)
}

func TestUsers_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUsersRepo(db)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, "alice", "a@example.com", "hash")
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, "alice", "b@example.com", "hash")
	assert.ErrorIs(t, err, core.ErrAlreadyExists)
}

func TestUsers_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewUsersRepo(db)

	_, err := repo.UserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestUsers_UpdateProfile(t *testing.T) {
	db := newTestDB(t)
	repo := NewUsersRepo(db)
	ctx := context.Background()

	id, err := repo.CreateUser(ctx, "alice", "a@example.com", "hash")
	require.NoError(t, err)

	require.NoError(t, repo.UpdateProfile(ctx, id, " Alice Smith ", "reads a lot"))

	user, err := repo.UserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", user.FullName)
	assert.Equal(t, "reads a lot", user.Bio)
}
