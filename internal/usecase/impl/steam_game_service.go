package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "magichat/internal/delivery/context"
	"magichat/internal/domain/entity"
	domainerrors "magichat/internal/domain/errors"
	"magichat/internal/domain/repository"
	"magichat/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SteamGameServiceParams holds dependencies for steamGameService, injected by Fx.
type SteamGameServiceParams struct {
	fx.In

	GameRepo repository.SteamGameRepository
	UserRepo repository.SteamUserRepository
	Logger   *slog.Logger
}

type steamGameService struct {
	gameRepo repository.SteamGameRepository
	userRepo repository.SteamUserRepository
	logger   *slog.Logger
}

// NewSteamGameService creates a new steam game service instance
func NewSteamGameService(params SteamGameServiceParams) usecase.SteamGameUsecase {
	return &steamGameService{
		gameRepo: params.GameRepo,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// log returns the request-scoped logger when there is one.
func (srv *steamGameService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateGame stores a game entered by hand.
func (srv *steamGameService) CreateGame(ctx context.Context, input *usecase.CreateGameInput) (*entity.SteamGame, error) {
	if input == nil || input.AppID <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("app_id must be a positive integer")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}

	game := &entity.SteamGame{
		AppID:     input.AppID,
		Name:      name,
		AppImgURL: input.AppImgURL,
	}

	if err := srv.gameRepo.Create(ctx, game); err != nil {
		if errors.Is(err, repository.ErrDuplicateSteamGame) {
			return nil, errors.Wrapf(domainerrors.ErrSteamGameAlreadyExists, "app id %d", input.AppID)
		}

		return nil, errors.Wrap(err, "failed to create steam game")
	}

	return game, nil
}

// GetGame retrieves a game by app id.
func (srv *steamGameService) GetGame(ctx context.Context, appID int64) (*entity.SteamGame, error) {
	game, err := srv.gameRepo.FindByAppID(ctx, appID)
	if err != nil {
		return nil, mapSteamGameError(err, appID)
	}

	return game, nil
}

// ListGames returns a page of games.
func (srv *steamGameService) ListGames(ctx context.Context, filter repository.GameFilter) ([]*entity.SteamGame, error) {
	games, err := srv.gameRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list steam games")
	}

	return games, nil
}

// UpdateGame overwrites the name and image of a game.
func (srv *steamGameService) UpdateGame(ctx context.Context, appID int64, input *usecase.UpdateGameInput) (*entity.SteamGame, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}

	game := &entity.SteamGame{
		AppID:     appID,
		Name:      strings.TrimSpace(input.Name),
		AppImgURL: input.AppImgURL,
	}

	if err := srv.gameRepo.Update(ctx, game); err != nil {
		return nil, mapSteamGameError(err, appID)
	}

	return game, nil
}

// DeleteGame removes a game and its ownership links.
func (srv *steamGameService) DeleteGame(ctx context.Context, appID int64) error {
	if err := srv.gameRepo.Delete(ctx, appID); err != nil {
		return mapSteamGameError(err, appID)
	}

	srv.log(ctx).InfoContext(ctx, "Deleted steam game", slog.Int64("app_id", appID))

	return nil
}

// ListGameOwners returns the users owning a game.
func (srv *steamGameService) ListGameOwners(ctx context.Context, appID int64) ([]*entity.SteamUser, error) {
	if _, err := srv.GetGame(ctx, appID); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.ListByOwnedGame(ctx, appID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list steam game owners")
	}

	return users, nil
}

func mapSteamGameError(err error, appID int64) error {
	if errors.Is(err, repository.ErrSteamGameNotFound) {
		return errors.Wrapf(domainerrors.ErrSteamGameNotFound, "app id %d", appID)
	}

	return errors.Wrap(err, "failed to access steam game")
}
