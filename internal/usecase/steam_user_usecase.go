package usecase

import (
	"context"

	"magichat/internal/domain/entity"
	"magichat/internal/domain/repository"
)

// SteamUserUsecase defines the interface for steam user use cases
type SteamUserUsecase interface {
	// ImportUser fetches the profile and owned games from Steam and stores them.
	// Importing an already stored user refreshes it without duplicating rows.
	ImportUser(ctx context.Context, steamID string) (*entity.SteamUser, error)

	// RefreshUser re-imports a user that is already stored
	RefreshUser(ctx context.Context, steamID string) (*entity.SteamUser, error)

	// GetUser retrieves a stored user
	GetUser(ctx context.Context, steamID string) (*entity.SteamUser, error)

	// ListUsers returns a page of stored users
	ListUsers(ctx context.Context, opts repository.ListOptions) ([]*entity.SteamUser, error)

	// ListUserGames returns the games a stored user owns
	ListUserGames(ctx context.Context, steamID string) ([]*entity.SteamGame, error)

	// DeleteUser removes a user according to the configured delete policy
	DeleteUser(ctx context.Context, steamID string) error
}
