package model

import "time"

// SteamGameModel is the GORM-specific struct for the 'steam_games' table.
// AppID is assigned by the platform, never by the database.
type SteamGameModel struct {
	AppID     int64   `gorm:"primaryKey;autoIncrement:false"`
	Name      string  `gorm:"type:varchar(255);not null"`
	AppImgURL *string `gorm:"type:varchar(512)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SteamGameModel) TableName() string {
	return "steam_games"
}
