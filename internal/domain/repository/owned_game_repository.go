package repository

import (
	"context"

	"magichat/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for ownership persistence.
var (
	// ErrOwnedGameNotFound is returned when an ownership link does not exist.
	ErrOwnedGameNotFound = errors.New("owned game not found")
	// ErrDuplicateOwnedGame is returned when the user already owns the game.
	ErrDuplicateOwnedGame = errors.New("owned game already exists")
	// ErrOwnedGameReference is returned when the user or the game does not exist.
	ErrOwnedGameReference = errors.New("owned game references a missing user or game")
)

// OwnedGameRepository defines the interface for ownership persistence.
type OwnedGameRepository interface {
	// FindByID retrieves a link by its surrogate id.
	FindByID(ctx context.Context, id int64) (*entity.OwnedGame, error)

	// List returns links ordered by id.
	List(ctx context.Context, filter OwnedGameFilter) ([]*entity.OwnedGame, error)

	// Create persists a new link.
	Create(ctx context.Context, ownedGame *entity.OwnedGame) error

	// FirstOrCreate returns the existing link for the pair or creates it.
	FirstOrCreate(ctx context.Context, steamID string, appID int64) (*entity.OwnedGame, error)

	// Delete removes a link by id.
	Delete(ctx context.Context, id int64) error

	// DeleteStale removes the user's links to games not in keepAppIDs.
	DeleteStale(ctx context.Context, steamID string, keepAppIDs []int64) (int64, error)

	// ListOwnershipPairs returns every (user, game) pair in one query, ordered by
	// user creation then link insertion.
	ListOwnershipPairs(ctx context.Context) ([]entity.OwnershipPair, error)
}
