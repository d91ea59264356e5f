// Package entity contains the core business objects of the project.
package entity

import "time"

// SteamUser is a Steam account mirrored from the platform profile.
type SteamUser struct {
	SteamID       string    `json:"steam_id"`        // 64-bit Steam id in decimal form, immutable.
	Username      string    `json:"username"`        // Persona name from the last successful import.
	ProfileImgURL string    `json:"profile_img_url"` // Full-size avatar URL from the last successful import.
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
