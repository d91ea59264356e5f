package usecase

import (
	"context"

	"magichat/internal/domain/entity"
	"magichat/internal/domain/repository"
)

// OwnedGameUsecase defines the interface for ownership link use cases
type OwnedGameUsecase interface {
	// CreateOwnedGame links an existing user to an existing game
	CreateOwnedGame(ctx context.Context, steamID string, appID int64) (*entity.OwnedGame, error)

	GetOwnedGame(ctx context.Context, id int64) (*entity.OwnedGame, error)
	ListOwnedGames(ctx context.Context, filter repository.OwnedGameFilter) ([]*entity.OwnedGame, error)
	DeleteOwnedGame(ctx context.Context, id int64) error

	// DeleteOwnedGameByPair removes the link between a user and a game
	DeleteOwnedGameByPair(ctx context.Context, steamID string, appID int64) error
}
