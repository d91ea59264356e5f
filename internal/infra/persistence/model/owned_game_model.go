package model

import "time"

// OwnedGameModel is the GORM-specific struct for the 'owned_games' table.
// A user owns a given game at most once; deleting either side removes the link.
type OwnedGameModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	SteamID   string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_owned_games_steam_id_app_id,priority:1"`
	AppID     int64     `gorm:"not null;index;uniqueIndex:idx_owned_games_steam_id_app_id,priority:2"`
	CreatedAt time.Time `gorm:"not null"`

	SteamUser SteamUserModel `gorm:"foreignKey:SteamID;references:SteamID;constraint:OnDelete:CASCADE"`
	SteamGame SteamGameModel `gorm:"foreignKey:AppID;references:AppID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OwnedGameModel) TableName() string {
	return "owned_games"
}
