// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strconv"

	"magichat/config"
	deliverycontext "magichat/internal/delivery/context"
	"magichat/internal/domain/entity"
	domainerrors "magichat/internal/domain/errors"
	"magichat/internal/domain/repository"
	"magichat/internal/domain/service"
	"magichat/internal/usecase"

	"github.com/pkg/errors"
	"github.com/puzpuzpuz/xsync"
	"go.uber.org/fx"
)

// SteamUserServiceParams holds dependencies for steamUserService, injected by Fx.
type SteamUserServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.SteamUserRepository
	GameRepo    repository.SteamGameRepository
	SteamClient service.SteamClient
	Config      *config.Config
	Logger      *slog.Logger
}

type steamUserService struct {
	txManager    repository.TransactionManager
	userRepo     repository.SteamUserRepository
	gameRepo     repository.SteamGameRepository
	steamClient  service.SteamClient
	importMode   string
	deletePolicy string
	logger       *slog.Logger

	// importLocks serializes imports of the same steam id within the process.
	// Each value is a one-slot channel so waiting can be abandoned with ctx.
	importLocks *xsync.MapOf[string, chan struct{}]
}

// NewSteamUserService creates a new steam user service instance
func NewSteamUserService(params SteamUserServiceParams) usecase.SteamUserUsecase {
	return &steamUserService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		gameRepo:     params.GameRepo,
		steamClient:  params.SteamClient,
		importMode:   params.Config.Steam.ImportMode,
		deletePolicy: params.Config.Steam.DeletePolicy,
		logger:       params.Logger,
		importLocks:  xsync.NewMapOf[chan struct{}](),
	}
}

// log returns the request-scoped logger when there is one.
func (srv *steamUserService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ImportUser materializes a user and its owned games from the Steam Web API.
func (srv *steamUserService) ImportUser(ctx context.Context, steamID string) (*entity.SteamUser, error) {
	if steamID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("steam id is required")
	}

	unlock, err := srv.lockImport(ctx, steamID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	profile, err := srv.steamClient.GetPlayerProfile(ctx, steamID)
	if err != nil {
		if errors.Is(err, service.ErrSteamProfileNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrSteamProfileNotFound, "steam id %s", steamID)
		}

		return nil, srv.upstreamError(ctx, steamID, err)
	}

	user := &entity.SteamUser{
		SteamID:       steamID,
		Username:      profile.PersonaName,
		ProfileImgURL: profile.AvatarFull,
	}

	games, fetchErr := srv.steamClient.GetOwnedGames(ctx, steamID)
	if fetchErr != nil {
		// The profile is known to be valid, so keep it even without the library.
		if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return repoFactory.NewSteamUserRepository().Upsert(ctx, user)
		}); err != nil {
			return nil, errors.Wrap(err, "failed to store steam user")
		}

		return nil, srv.upstreamError(ctx, steamID, fetchErr)
	}

	var linked, removed int64
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		linked, removed = 0, 0

		if err := repoFactory.NewSteamUserRepository().Upsert(ctx, user); err != nil {
			return errors.Wrap(err, "failed to upsert steam user")
		}

		gameRepo := repoFactory.NewSteamGameRepository()
		ownedRepo := repoFactory.NewOwnedGameRepository()
		keep := make([]int64, 0, len(games))

		for _, info := range games {
			if _, err := gameRepo.FirstOrCreate(ctx, srv.gameFromInfo(info)); err != nil {
				return errors.Wrapf(err, "failed to store steam game %d", info.AppID)
			}
			if _, err := ownedRepo.FirstOrCreate(ctx, steamID, info.AppID); err != nil {
				return errors.Wrapf(err, "failed to link steam game %d", info.AppID)
			}
			keep = append(keep, info.AppID)
			linked++
		}

		// An empty list is indistinguishable from a private profile, so nothing is pruned.
		if srv.importMode == config.ImportModeSync && len(keep) > 0 {
			n, err := ownedRepo.DeleteStale(ctx, steamID, keep)
			if err != nil {
				return errors.Wrap(err, "failed to prune owned games")
			}
			removed = n
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to import steam user")
	}

	srv.log(ctx).InfoContext(ctx, "Imported steam user",
		slog.String("steam_id", steamID),
		slog.Int64("owned_games", linked),
		slog.Int64("removed_links", removed),
	)

	return user, nil
}

// RefreshUser re-imports a stored user.
func (srv *steamUserService) RefreshUser(ctx context.Context, steamID string) (*entity.SteamUser, error) {
	if _, err := srv.GetUser(ctx, steamID); err != nil {
		return nil, err
	}

	return srv.ImportUser(ctx, steamID)
}

// GetUser retrieves a stored user.
func (srv *steamUserService) GetUser(ctx context.Context, steamID string) (*entity.SteamUser, error) {
	user, err := srv.userRepo.FindBySteamID(ctx, steamID)
	if err != nil {
		return nil, mapSteamUserError(err, steamID)
	}

	return user, nil
}

// ListUsers returns a page of users.
func (srv *steamUserService) ListUsers(ctx context.Context, opts repository.ListOptions) ([]*entity.SteamUser, error) {
	users, err := srv.userRepo.List(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list steam users")
	}

	return users, nil
}

// ListUserGames returns the games a user owns.
func (srv *steamUserService) ListUserGames(ctx context.Context, steamID string) ([]*entity.SteamGame, error) {
	if _, err := srv.GetUser(ctx, steamID); err != nil {
		return nil, err
	}

	games, err := srv.gameRepo.ListByOwner(ctx, steamID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list steam user games")
	}

	return games, nil
}

// DeleteUser removes the user and its links. With the orphan_games policy the
// games nobody else owns are removed in the same transaction.
func (srv *steamUserService) DeleteUser(ctx context.Context, steamID string) error {
	var orphaned int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orphaned = 0

		if srv.deletePolicy == config.DeletePolicyOrphanGames {
			n, err := repoFactory.NewSteamGameRepository().DeleteExclusivelyOwnedBy(ctx, steamID)
			if err != nil {
				return errors.Wrap(err, "failed to delete orphaned steam games")
			}
			orphaned = n
		}

		if err := repoFactory.NewSteamUserRepository().Delete(ctx, steamID); err != nil {
			return mapSteamUserError(err, steamID)
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).InfoContext(ctx, "Deleted steam user",
		slog.String("steam_id", steamID),
		slog.String("delete_policy", srv.deletePolicy),
		slog.Int64("deleted_games", orphaned),
	)

	return nil
}

// lockImport waits for the import slot of steamID until ctx is done.
func (srv *steamUserService) lockImport(ctx context.Context, steamID string) (func(), error) {
	slot, _ := srv.importLocks.LoadOrStore(steamID, make(chan struct{}, 1))

	select {
	case slot <- struct{}{}:
		return func() { <-slot }, nil
	case <-ctx.Done():
		return nil, errors.Wrapf(ctx.Err(), "waiting to import steam id %s", steamID)
	}
}

func (srv *steamUserService) gameFromInfo(info service.OwnedGameInfo) *entity.SteamGame {
	name := info.Name
	if name == "" {
		name = "App " + strconv.FormatInt(info.AppID, 10)
	}

	return &entity.SteamGame{
		AppID:     info.AppID,
		Name:      name,
		AppImgURL: srv.steamClient.GameImageURL(info.AppID, info.ImgIconURL),
	}
}

func (srv *steamUserService) upstreamError(ctx context.Context, steamID string, err error) error {
	srv.log(ctx).WarnContext(ctx, "Steam Web API request failed",
		slog.String("steam_id", steamID),
		slog.String("error", err.Error()),
	)

	return domainerrors.ErrSteamUpstream.WithDetails(err.Error())
}

func mapSteamUserError(err error, steamID string) error {
	if errors.Is(err, repository.ErrSteamUserNotFound) {
		return errors.Wrapf(domainerrors.ErrSteamUserNotFound, "steam id %s", steamID)
	}

	return errors.Wrap(err, "failed to access steam user")
}
