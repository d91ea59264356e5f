package entity

import "time"

// OwnedGame links a SteamUser to a SteamGame they own.
type OwnedGame struct {
	ID        int64     `json:"id"`
	SteamID   string    `json:"steam_id"` // Owner.
	AppID     int64     `json:"app_id"`   // Owned game.
	CreatedAt time.Time `json:"created_at"`
}

// OwnershipPair is one row of the user/game join used by the shared-games analysis.
type OwnershipPair struct {
	SteamID  string
	Username string
	AppID    int64
}
