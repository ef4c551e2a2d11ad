package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"tribalbridge/backend/internal/model"
	"tribalbridge/backend/internal/repository"
	"tribalbridge/backend/internal/repository/testutil"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", byID.Username)

	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, created.ID, byName.ID)

	_, err = repo.GetByUsername(ctx, "nobody")
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUserRepository_UsernameUnique(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, model.User{Username: "alice", Email: "a@example.com", PasswordHash: "x"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, model.User{Username: "alice", Email: "b@example.com", PasswordHash: "x"})
	require.Error(t, err)
}

func TestUserRepository_ExistsAndCount(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUserRepository(db)
	ctx := context.Background()

	exists, err := repo.ExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	require.False(t, exists)

	testutil.SeedUser(t, db, "alice")
	testutil.SeedUser(t, db, "bob")

	exists, err = repo.ExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	require.True(t, exists)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}
