package impl

import (
	"context"
	"log/slog"

	deliverycontext "magichat/internal/delivery/context"
	"magichat/internal/domain/entity"
	domainerrors "magichat/internal/domain/errors"
	"magichat/internal/domain/repository"
	"magichat/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OwnedGameServiceParams holds dependencies for ownedGameService, injected by Fx.
type OwnedGameServiceParams struct {
	fx.In

	OwnedRepo repository.OwnedGameRepository
	Logger    *slog.Logger
}

type ownedGameService struct {
	ownedRepo repository.OwnedGameRepository
	logger    *slog.Logger
}

// NewOwnedGameService creates a new owned game service instance
func NewOwnedGameService(params OwnedGameServiceParams) usecase.OwnedGameUsecase {
	return &ownedGameService{
		ownedRepo: params.OwnedRepo,
		logger:    params.Logger,
	}
}

// log returns the request-scoped logger when there is one.
func (srv *ownedGameService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOwnedGame links a stored user to a stored game.
func (srv *ownedGameService) CreateOwnedGame(ctx context.Context, steamID string, appID int64) (*entity.OwnedGame, error) {
	if steamID == "" || appID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("steam_id and a positive app_id are required")
	}

	owned := &entity.OwnedGame{
		SteamID: steamID,
		AppID:   appID,
	}

	if err := srv.ownedRepo.Create(ctx, owned); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateOwnedGame):
			return nil, errors.Wrapf(domainerrors.ErrOwnedGameAlreadyExists, "steam id %s, app id %d", steamID, appID)
		case errors.Is(err, repository.ErrOwnedGameReference):
			return nil, errors.Wrapf(domainerrors.ErrOwnedGameReference, "steam id %s, app id %d", steamID, appID)
		default:
			return nil, errors.Wrap(err, "failed to create owned game")
		}
	}

	srv.log(ctx).InfoContext(ctx, "Linked owned game",
		slog.Int64("id", owned.ID),
		slog.String("steam_id", steamID),
		slog.Int64("app_id", appID),
	)

	return owned, nil
}

// GetOwnedGame retrieves a link by id.
func (srv *ownedGameService) GetOwnedGame(ctx context.Context, id int64) (*entity.OwnedGame, error) {
	owned, err := srv.ownedRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapOwnedGameError(err)
	}

	return owned, nil
}

// ListOwnedGames returns a page of links.
func (srv *ownedGameService) ListOwnedGames(ctx context.Context, filter repository.OwnedGameFilter) ([]*entity.OwnedGame, error) {
	owned, err := srv.ownedRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owned games")
	}

	return owned, nil
}

// DeleteOwnedGame removes a link by id.
func (srv *ownedGameService) DeleteOwnedGame(ctx context.Context, id int64) error {
	if err := srv.ownedRepo.Delete(ctx, id); err != nil {
		return mapOwnedGameError(err)
	}

	srv.log(ctx).InfoContext(ctx, "Deleted owned game", slog.Int64("id", id))

	return nil
}

// DeleteOwnedGameByPair removes the link between a user and a game.
func (srv *ownedGameService) DeleteOwnedGameByPair(ctx context.Context, steamID string, appID int64) error {
	if steamID == "" || appID <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("steam_id and a positive app_id are required")
	}

	links, err := srv.ownedRepo.List(ctx, repository.OwnedGameFilter{
		ListOptions: repository.ListOptions{Limit: 1},
		SteamID:     steamID,
		AppID:       appID,
	})
	if err != nil {
		return errors.Wrap(err, "failed to find owned game")
	}
	if len(links) == 0 {
		return errors.Wrapf(domainerrors.ErrOwnedGameNotFound, "steam id %s, app id %d", steamID, appID)
	}

	return srv.DeleteOwnedGame(ctx, links[0].ID)
}

func mapOwnedGameError(err error) error {
	if errors.Is(err, repository.ErrOwnedGameNotFound) {
		return errors.Wrap(domainerrors.ErrOwnedGameNotFound, "owned game lookup")
	}

	return errors.Wrap(err, "failed to access owned game")
}
