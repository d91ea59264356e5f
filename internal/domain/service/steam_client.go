package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrSteamProfileNotFound is returned when the platform reports no player for the id.
var ErrSteamProfileNotFound = errors.New("steam profile not found")

// PlayerProfile is the subset of a player summary mirrored onto a SteamUser.
type PlayerProfile struct {
	SteamID     string
	PersonaName string
	AvatarFull  string
}

// OwnedGameInfo is one entry of a player's owned-games list. Name and ImgIconURL
// are empty when the platform omits them.
type OwnedGameInfo struct {
	AppID      int64
	Name       string
	ImgIconURL string
}

// SteamClient defines the interface for the Steam Web API.
type SteamClient interface {
	// GetPlayerProfile fetches a player summary. Returns ErrSteamProfileNotFound
	// when the id is unknown; any other error is an upstream failure.
	GetPlayerProfile(ctx context.Context, steamID string) (*PlayerProfile, error)

	// GetOwnedGames lists the games a player owns, including free-to-play titles.
	// A private or empty library yields an empty slice.
	GetOwnedGames(ctx context.Context, steamID string) ([]OwnedGameInfo, error)

	// GameImageURL builds the icon URL for a game, or nil without an icon hash.
	GameImageURL(appID int64, iconHash string) *string
}
