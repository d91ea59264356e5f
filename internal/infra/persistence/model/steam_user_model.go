package model

import "time"

// SteamUserModel is the GORM-specific struct for the 'steam_users' table.
type SteamUserModel struct {
	SteamID       string `gorm:"type:varchar(32);primaryKey"`
	Username      string `gorm:"type:varchar(255);not null"`
	ProfileImgURL string `gorm:"type:varchar(512);not null;default:''"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SteamUserModel) TableName() string {
	return "steam_users"
}
