package impl

import (
	"context"
	"testing"

	domainerrors "magichat/internal/domain/errors"
	"magichat/internal/domain/repository"
	"magichat/internal/infra/persistence/postgres"
	"magichat/internal/testutil"
	"magichat/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestOwnedGameService(t *testing.T) (usecase.OwnedGameUsecase, *gorm.DB) {
	db := testutil.NewTestDB(t)

	srv := NewOwnedGameService(OwnedGameServiceParams{
		OwnedRepo: postgres.NewOwnedGameRepository(db),
		Logger:    testutil.NewDiscardLogger(),
	})

	seedUser(t, db, "1", "alice", 0)
	seedUser(t, db, "2", "bob", 1)
	seedGame(t, db, 10, "A")
	seedGame(t, db, 20, "B")

	return srv, db
}

func TestOwnedGameService_CRUD(t *testing.T) {
	srv, _ := createTestOwnedGameService(t)
	ctx := context.Background()

	created, err := srv.CreateOwnedGame(ctx, "1", 10)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := srv.GetOwnedGame(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "1", got.SteamID)
	assert.Equal(t, int64(10), got.AppID)

	require.NoError(t, srv.DeleteOwnedGame(ctx, created.ID))

	_, err = srv.GetOwnedGame(ctx, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOwnedGameNotFound)
	assert.ErrorIs(t, srv.DeleteOwnedGame(ctx, created.ID), domainerrors.ErrOwnedGameNotFound)
}

func TestOwnedGameService_CreateOwnedGame_Errors(t *testing.T) {
	srv, _ := createTestOwnedGameService(t)
	ctx := context.Background()

	_, err := srv.CreateOwnedGame(ctx, "1", 10)
	require.NoError(t, err)

	tests := []struct {
		name    string
		steamID string
		appID   int64
		wantErr error
	}{
		{name: "duplicate pair", steamID: "1", appID: 10, wantErr: domainerrors.ErrOwnedGameAlreadyExists},
		{name: "unknown user", steamID: "404", appID: 10, wantErr: domainerrors.ErrOwnedGameReference},
		{name: "unknown game", steamID: "1", appID: 404, wantErr: domainerrors.ErrOwnedGameReference},
		{name: "missing app id", steamID: "1", appID: 0, wantErr: domainerrors.ErrValidationFailed},
		{name: "missing steam id", steamID: "", appID: 10, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.CreateOwnedGame(ctx, tt.steamID, tt.appID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOwnedGameService_ListOwnedGames(t *testing.T) {
	srv, _ := createTestOwnedGameService(t)
	ctx := context.Background()

	for _, link := range []struct {
		steamID string
		appID   int64
	}{{"1", 10}, {"1", 20}, {"2", 10}} {
		_, err := srv.CreateOwnedGame(ctx, link.steamID, link.appID)
		require.NoError(t, err)
	}

	all, err := srv.ListOwnedGames(ctx, repository.OwnedGameFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byUser, err := srv.ListOwnedGames(ctx, repository.OwnedGameFilter{SteamID: "1"})
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byGame, err := srv.ListOwnedGames(ctx, repository.OwnedGameFilter{AppID: 10})
	require.NoError(t, err)
	require.Len(t, byGame, 2)
	assert.Equal(t, "1", byGame[0].SteamID)
	assert.Equal(t, "2", byGame[1].SteamID)
}

func TestOwnedGameService_DeleteOwnedGameByPair(t *testing.T) {
	srv, _ := createTestOwnedGameService(t)
	ctx := context.Background()

	_, err := srv.CreateOwnedGame(ctx, "1", 10)
	require.NoError(t, err)
	_, err = srv.CreateOwnedGame(ctx, "2", 10)
	require.NoError(t, err)

	require.NoError(t, srv.DeleteOwnedGameByPair(ctx, "1", 10))

	remaining, err := srv.ListOwnedGames(ctx, repository.OwnedGameFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "2", remaining[0].SteamID)

	err = srv.DeleteOwnedGameByPair(ctx, "1", 10)
	assert.ErrorIs(t, err, domainerrors.ErrOwnedGameNotFound)
}
