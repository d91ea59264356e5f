package entity

// GameOwner identifies one owner of a shared game.
type GameOwner struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// SharedGameDetail is the subset of game fields reported by the analysis.
type SharedGameDetail struct {
	AppID     int64   `json:"app_id"`
	Name      string  `json:"name"`
	AppImgURL *string `json:"app_img_url"`
}

// SharedGame is a game owned by at least the requested number of users.
type SharedGame struct {
	Game        SharedGameDetail `json:"game"`
	SharedBy    []GameOwner      `json:"shared_by"`    // Owners in user then link insertion order.
	SharedCount int              `json:"shared_count"` // Always len(SharedBy).
}

// SharedGamesMeta describes the query that produced a SharedGamesResult.
type SharedGamesMeta struct {
	MinSharedCount int `json:"min_shared_count"`
	TotalGames     int `json:"total_games"`
}

// SharedGamesResult is the ranked output of the shared-games analysis.
type SharedGamesResult struct {
	Results []SharedGame    `json:"results"`
	Meta    SharedGamesMeta `json:"meta"`
}
