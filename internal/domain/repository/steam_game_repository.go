package repository

import (
	"context"

	"magichat/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for game persistence.
var (
	// ErrSteamGameNotFound is returned when no game has the requested app id.
	ErrSteamGameNotFound = errors.New("steam game not found")
	// ErrDuplicateSteamGame is returned when creating a game whose app id is taken.
	ErrDuplicateSteamGame = errors.New("steam game already exists")
)

// SteamGameRepository defines the interface for steam game persistence.
type SteamGameRepository interface {
	// FindByAppID retrieves a game by app id.
	FindByAppID(ctx context.Context, appID int64) (*entity.SteamGame, error)

	// FindByAppIDs loads every listed game in one query. Missing ids are skipped.
	FindByAppIDs(ctx context.Context, appIDs []int64) ([]*entity.SteamGame, error)

	// List returns games ordered by app id.
	List(ctx context.Context, filter GameFilter) ([]*entity.SteamGame, error)

	// ListByOwner returns the games owned by a user, in link insertion order.
	ListByOwner(ctx context.Context, steamID string) ([]*entity.SteamGame, error)

	// Create persists a new game.
	Create(ctx context.Context, game *entity.SteamGame) error

	// FirstOrCreate returns the stored game or creates it from the given values.
	// Existing rows are never overwritten.
	FirstOrCreate(ctx context.Context, game *entity.SteamGame) (*entity.SteamGame, error)

	// Update overwrites name and image of an existing game.
	Update(ctx context.Context, game *entity.SteamGame) error

	// Delete removes the game; ownership rows cascade.
	Delete(ctx context.Context, appID int64) error

	// DeleteExclusivelyOwnedBy removes every game whose only owner is the user
	// and returns how many were deleted.
	DeleteExclusivelyOwnedBy(ctx context.Context, steamID string) (int64, error)
}
