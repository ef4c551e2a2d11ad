package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tribalbridge/backend/internal/repository"
	"tribalbridge/backend/internal/repository/testutil"
)

func TestSettingsRepository_SetGetDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSettingsRepository(db)
	ctx := context.Background()

	got, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, repo.Set(ctx, "auth.jwt_secret", "abc"))

	got, err = repo.Get(ctx, "auth.jwt_secret")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "abc", got.Value)

	// Upsert overwrites
	require.NoError(t, repo.Set(ctx, "auth.jwt_secret", "def"))
	got, err = repo.Get(ctx, "auth.jwt_secret")
	require.NoError(t, err)
	require.Equal(t, "def", got.Value)

	require.NoError(t, repo.Delete(ctx, "auth.jwt_secret"))
	got, err = repo.Get(ctx, "auth.jwt_secret")
	require.NoError(t, err)
	require.Nil(t, got)
}
