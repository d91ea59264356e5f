// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"magichat/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSteamUserNotFound is returned when no user has the requested steam id.
var ErrSteamUserNotFound = errors.New("steam user not found")

// SteamUserRepository defines the interface for steam user persistence.
type SteamUserRepository interface {
	// FindBySteamID retrieves a user by steam id.
	FindBySteamID(ctx context.Context, steamID string) (*entity.SteamUser, error)

	// List returns users ordered by creation time.
	List(ctx context.Context, opts ListOptions) ([]*entity.SteamUser, error)

	// ListByOwnedGame returns the users owning the game, in link insertion order.
	ListByOwnedGame(ctx context.Context, appID int64) ([]*entity.SteamUser, error)

	// Upsert creates the user or overwrites its profile fields.
	Upsert(ctx context.Context, user *entity.SteamUser) error

	// Delete removes the user; ownership rows cascade.
	Delete(ctx context.Context, steamID string) error
}
