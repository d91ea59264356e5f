package impl

import (
	"testing"
	"time"

	"magichat/config"
	"magichat/internal/domain/repository"
	"magichat/internal/infra/persistence/model"
	"magichat/internal/infra/persistence/postgres"
	"magichat/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var seedBaseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestConfig(importMode, deletePolicy string) *config.Config {
	return &config.Config{
		Database: &config.DatabaseConfig{},
		Steam: &config.SteamConfig{
			APIKey:       "test-key",
			ImportMode:   importMode,
			DeletePolicy: deletePolicy,
		},
	}
}

func newTestTxManager(t *testing.T, db *gorm.DB, cfg *config.Config) repository.TransactionManager {
	t.Helper()

	txManager, err := postgres.NewTransactionManager(db, cfg, testutil.NewDiscardLogger())
	require.NoError(t, err)

	return txManager
}

func countRows(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)

	return n
}

// seedUser stores a user created offset seconds after a fixed base time, so
// insertion order does not depend on clock resolution.
func seedUser(t *testing.T, db *gorm.DB, steamID, username string, offset int) {
	t.Helper()

	createdAt := seedBaseTime.Add(time.Duration(offset) * time.Second)
	require.NoError(t, db.Create(&model.SteamUserModel{
		SteamID:   steamID,
		Username:  username,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}).Error)
}

func seedGame(t *testing.T, db *gorm.DB, appID int64, name string) {
	t.Helper()
	require.NoError(t, db.Create(&model.SteamGameModel{AppID: appID, Name: name}).Error)
}

func seedLink(t *testing.T, db *gorm.DB, steamID string, appID int64) {
	t.Helper()
	require.NoError(t, db.Omit("SteamUser", "SteamGame").Create(&model.OwnedGameModel{SteamID: steamID, AppID: appID}).Error)
}
