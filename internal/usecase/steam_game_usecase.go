package usecase

import (
	"context"

	"magichat/internal/domain/entity"
	"magichat/internal/domain/repository"
)

// CreateGameInput represents the fields of a manually created game
type CreateGameInput struct {
	AppID     int64   `json:"app_id"`
	Name      string  `json:"name"`
	AppImgURL *string `json:"app_img_url"`
}

// UpdateGameInput represents the editable fields of a game
type UpdateGameInput struct {
	Name      string  `json:"name"`
	AppImgURL *string `json:"app_img_url"`
}

// SteamGameUsecase defines the interface for steam game use cases
type SteamGameUsecase interface {
	CreateGame(ctx context.Context, input *CreateGameInput) (*entity.SteamGame, error)
	GetGame(ctx context.Context, appID int64) (*entity.SteamGame, error)
	ListGames(ctx context.Context, filter repository.GameFilter) ([]*entity.SteamGame, error)
	UpdateGame(ctx context.Context, appID int64, input *UpdateGameInput) (*entity.SteamGame, error)

	// DeleteGame removes a game together with its ownership links
	DeleteGame(ctx context.Context, appID int64) error

	// ListGameOwners returns the users owning a stored game
	ListGameOwners(ctx context.Context, appID int64) ([]*entity.SteamUser, error)
}
