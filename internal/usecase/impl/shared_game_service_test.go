package impl

import (
	"context"
	"testing"

	"magichat/internal/domain/entity"
	domainerrors "magichat/internal/domain/errors"
	"magichat/internal/infra/persistence/postgres"
	"magichat/internal/testutil"
	"magichat/internal/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestSharedGameService(t *testing.T) (usecase.SharedGameUsecase, *gorm.DB) {
	db := testutil.NewTestDB(t)

	srv := NewSharedGameService(SharedGameServiceParams{
		OwnedRepo: postgres.NewOwnedGameRepository(db),
		GameRepo:  postgres.NewSteamGameRepository(db),
		Logger:    testutil.NewDiscardLogger(),
	})

	return srv, db
}

// seedSharedScenario stores users A{1,2}, B{2,3} and C{2}.
func seedSharedScenario(t *testing.T, db *gorm.DB) {
	seedUser(t, db, "A", "alice", 0)
	seedUser(t, db, "B", "bob", 1)
	seedUser(t, db, "C", "carol", 2)
	seedGame(t, db, 1, "One")
	seedGame(t, db, 2, "Two")
	seedGame(t, db, 3, "Three")
	seedLink(t, db, "A", 1)
	seedLink(t, db, "A", 2)
	seedLink(t, db, "B", 2)
	seedLink(t, db, "B", 3)
	seedLink(t, db, "C", 2)
}

func TestSharedGameService_FindSharedGames(t *testing.T) {
	srv, db := createTestSharedGameService(t)
	seedSharedScenario(t, db)

	got, err := srv.FindSharedGames(context.Background(), 2)
	require.NoError(t, err)

	want := &entity.SharedGamesResult{
		Results: []entity.SharedGame{
			{
				Game: entity.SharedGameDetail{AppID: 2, Name: "Two"},
				SharedBy: []entity.GameOwner{
					{UserID: "A", Username: "alice"},
					{UserID: "B", Username: "bob"},
					{UserID: "C", Username: "carol"},
				},
				SharedCount: 3,
			},
		},
		Meta: entity.SharedGamesMeta{MinSharedCount: 2, TotalGames: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindSharedGames() mismatch (-want +got):\n%s", diff)
	}
}

func TestSharedGameService_FindSharedGames_Thresholds(t *testing.T) {
	tests := []struct {
		name       string
		minShared  int
		wantAppIDs []int64
	}{
		{name: "threshold one returns every owned game", minShared: 1, wantAppIDs: []int64{2, 1, 3}},
		{name: "threshold three", minShared: 3, wantAppIDs: []int64{2}},
		{name: "threshold above user count", minShared: 100, wantAppIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, db := createTestSharedGameService(t)
			seedSharedScenario(t, db)

			got, err := srv.FindSharedGames(context.Background(), tt.minShared)
			require.NoError(t, err)

			appIDs := make([]int64, 0, len(got.Results))
			for _, r := range got.Results {
				appIDs = append(appIDs, r.Game.AppID)
				assert.Equal(t, len(r.SharedBy), r.SharedCount)
				assert.GreaterOrEqual(t, r.SharedCount, tt.minShared)
			}
			assert.Equal(t, tt.wantAppIDs, appIDs)
			assert.Equal(t, len(tt.wantAppIDs), got.Meta.TotalGames)
			assert.Equal(t, tt.minShared, got.Meta.MinSharedCount)
		})
	}
}

func TestSharedGameService_FindSharedGames_Empty(t *testing.T) {
	srv, _ := createTestSharedGameService(t)

	got, err := srv.FindSharedGames(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, got.Results)
	assert.Empty(t, got.Results)
	assert.Zero(t, got.Meta.TotalGames)
}

func TestSharedGameService_FindSharedGames_InvalidThreshold(t *testing.T) {
	srv, _ := createTestSharedGameService(t)

	for _, minShared := range []int{0, -1} {
		_, err := srv.FindSharedGames(context.Background(), minShared)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestGroupOwnersByGame(t *testing.T) {
	pairs := []entity.OwnershipPair{
		{SteamID: "A", Username: "alice", AppID: 7},
		{SteamID: "A", Username: "alice", AppID: 5},
		{SteamID: "B", Username: "bob", AppID: 7},
		{SteamID: "B", Username: "bob", AppID: 5},
		{SteamID: "C", Username: "carol", AppID: 9},
	}

	owners, appIDs := groupOwnersByGame(pairs, 2)

	assert.Equal(t, []int64{5, 7}, appIDs)
	assert.Len(t, owners, 2)
	assert.NotContains(t, owners, int64(9))
	assert.Equal(t, []entity.GameOwner{
		{UserID: "A", Username: "alice"},
		{UserID: "B", Username: "bob"},
	}, owners[7])
}

func TestRankSharedGames(t *testing.T) {
	games := []*entity.SteamGame{
		{AppID: 3, Name: "Three"},
		{AppID: 1, Name: "One"},
		{AppID: 2, Name: "Two"},
		{AppID: 4, Name: "Unowned"},
	}
	owners := map[int64][]entity.GameOwner{
		1: {{UserID: "A"}, {UserID: "B"}},
		2: {{UserID: "A"}, {UserID: "B"}, {UserID: "C"}},
		3: {{UserID: "B"}, {UserID: "C"}},
	}

	got := rankSharedGames(games, owners)

	require.Len(t, got, 3)
	assert.Equal(t, int64(2), got[0].Game.AppID)
	assert.Equal(t, 3, got[0].SharedCount)
	// Equal counts fall back to ascending app id.
	assert.Equal(t, int64(1), got[1].Game.AppID)
	assert.Equal(t, int64(3), got[2].Game.AppID)
}
