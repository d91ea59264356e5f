package usecase

import (
	"context"

	"magichat/internal/domain/entity"
)

// DefaultMinSharedCount is the owner threshold used when the caller gives none.
const DefaultMinSharedCount = 2

// SharedGameUsecase defines the interface for the shared games analysis
type SharedGameUsecase interface {
	// FindSharedGames returns the games owned by at least minSharedCount users,
	// most shared first.
	FindSharedGames(ctx context.Context, minSharedCount int) (*entity.SharedGamesResult, error)
}
