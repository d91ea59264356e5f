package impl

import (
	"context"
	"testing"

	domainerrors "magichat/internal/domain/errors"
	"magichat/internal/domain/repository"
	"magichat/internal/infra/persistence/model"
	"magichat/internal/infra/persistence/postgres"
	"magichat/internal/testutil"
	"magichat/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestSteamGameService(t *testing.T) (usecase.SteamGameUsecase, *gorm.DB) {
	db := testutil.NewTestDB(t)

	srv := NewSteamGameService(SteamGameServiceParams{
		GameRepo: postgres.NewSteamGameRepository(db),
		UserRepo: postgres.NewSteamUserRepository(db),
		Logger:   testutil.NewDiscardLogger(),
	})

	return srv, db
}

func TestSteamGameService_CRUD(t *testing.T) {
	srv, _ := createTestSteamGameService(t)
	ctx := context.Background()
	img := "https://cdn.example/440.jpg"

	created, err := srv.CreateGame(ctx, &usecase.CreateGameInput{AppID: 440, Name: " Team Fortress 2 ", AppImgURL: &img})
	require.NoError(t, err)
	assert.Equal(t, "Team Fortress 2", created.Name)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := srv.GetGame(ctx, 440)
	require.NoError(t, err)
	assert.Equal(t, "Team Fortress 2", got.Name)
	require.NotNil(t, got.AppImgURL)
	assert.Equal(t, img, *got.AppImgURL)

	updated, err := srv.UpdateGame(ctx, 440, &usecase.UpdateGameInput{Name: "TF2"})
	require.NoError(t, err)
	assert.Equal(t, "TF2", updated.Name)
	assert.Nil(t, updated.AppImgURL)

	require.NoError(t, srv.DeleteGame(ctx, 440))

	_, err = srv.GetGame(ctx, 440)
	assert.ErrorIs(t, err, domainerrors.ErrSteamGameNotFound)
}

func TestSteamGameService_CreateGame_Errors(t *testing.T) {
	srv, db := createTestSteamGameService(t)
	ctx := context.Background()
	seedGame(t, db, 10, "Existing")

	tests := []struct {
		name    string
		input   *usecase.CreateGameInput
		wantErr error
	}{
		{name: "duplicate app id", input: &usecase.CreateGameInput{AppID: 10, Name: "Again"}, wantErr: domainerrors.ErrSteamGameAlreadyExists},
		{name: "missing app id", input: &usecase.CreateGameInput{Name: "No id"}, wantErr: domainerrors.ErrValidationFailed},
		{name: "blank name", input: &usecase.CreateGameInput{AppID: 11, Name: "  "}, wantErr: domainerrors.ErrValidationFailed},
		{name: "nil input", input: nil, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.CreateGame(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSteamGameService_NotFound(t *testing.T) {
	srv, _ := createTestSteamGameService(t)
	ctx := context.Background()

	_, err := srv.UpdateGame(ctx, 99, &usecase.UpdateGameInput{Name: "Nope"})
	assert.ErrorIs(t, err, domainerrors.ErrSteamGameNotFound)

	err = srv.DeleteGame(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrSteamGameNotFound)

	_, err = srv.ListGameOwners(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrSteamGameNotFound)
}

func TestSteamGameService_DeleteGame_CascadesLinks(t *testing.T) {
	srv, db := createTestSteamGameService(t)
	ctx := context.Background()

	seedUser(t, db, "1", "alice", 0)
	seedGame(t, db, 10, "A")
	seedGame(t, db, 20, "B")
	seedLink(t, db, "1", 10)
	seedLink(t, db, "1", 20)

	require.NoError(t, srv.DeleteGame(ctx, 10))

	assert.Equal(t, int64(1), countRows(t, db, &model.OwnedGameModel{}))
	assert.Equal(t, int64(1), countRows(t, db, &model.SteamUserModel{}))
}

func TestSteamGameService_ListGames(t *testing.T) {
	srv, db := createTestSteamGameService(t)
	ctx := context.Background()

	seedGame(t, db, 30, "Portal 2")
	seedGame(t, db, 10, "Portal")
	seedGame(t, db, 20, "Half-Life")

	all, err := srv.ListGames(ctx, repository.GameFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(10), all[0].AppID)

	filtered, err := srv.ListGames(ctx, repository.GameFilter{Name: "portal"})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	paged, err := srv.ListGames(ctx, repository.GameFilter{ListOptions: repository.ListOptions{Limit: 1, Offset: 1}})
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, int64(20), paged[0].AppID)
}

func TestSteamGameService_ListGameOwners(t *testing.T) {
	srv, db := createTestSteamGameService(t)

	seedUser(t, db, "1", "alice", 0)
	seedUser(t, db, "2", "bob", 1)
	seedGame(t, db, 10, "A")
	seedLink(t, db, "2", 10)
	seedLink(t, db, "1", 10)

	owners, err := srv.ListGameOwners(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, owners, 2)
	assert.Equal(t, "2", owners[0].SteamID)
	assert.Equal(t, "1", owners[1].SteamID)
}
