package entity

import "time"

// SteamGame is a game known to the platform, keyed by its app id.
type SteamGame struct {
	AppID     int64     `json:"app_id"`      // Platform-assigned application id.
	Name      string    `json:"name"`        // Display name.
	AppImgURL *string   `json:"app_img_url"` // Icon URL, nil when the platform reported none.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
