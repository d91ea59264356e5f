package impl

import (
	"context"
	"log/slog"
	"sort"

	deliverycontext "magichat/internal/delivery/context"
	"magichat/internal/domain/entity"
	domainerrors "magichat/internal/domain/errors"
	"magichat/internal/domain/repository"
	"magichat/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SharedGameServiceParams holds dependencies for sharedGameService, injected by Fx.
type SharedGameServiceParams struct {
	fx.In

	OwnedRepo repository.OwnedGameRepository
	GameRepo  repository.SteamGameRepository
	Logger    *slog.Logger
}

type sharedGameService struct {
	ownedRepo repository.OwnedGameRepository
	gameRepo  repository.SteamGameRepository
	logger    *slog.Logger
}

// NewSharedGameService creates a new shared games analysis service
func NewSharedGameService(params SharedGameServiceParams) usecase.SharedGameUsecase {
	return &sharedGameService{
		ownedRepo: params.OwnedRepo,
		gameRepo:  params.GameRepo,
		logger:    params.Logger,
	}
}

// log returns the request-scoped logger when there is one.
func (srv *sharedGameService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindSharedGames runs the shared games analysis with two queries: one for
// every ownership pair and one for the details of the qualifying games.
func (srv *sharedGameService) FindSharedGames(ctx context.Context, minSharedCount int) (*entity.SharedGamesResult, error) {
	if minSharedCount < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("min_shared_count must be a positive integer")
	}

	pairs, err := srv.ownedRepo.ListOwnershipPairs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ownership pairs")
	}

	owners, appIDs := groupOwnersByGame(pairs, minSharedCount)

	games, err := srv.gameRepo.FindByAppIDs(ctx, appIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shared games")
	}

	results := rankSharedGames(games, owners)

	srv.log(ctx).DebugContext(ctx, "Computed shared games",
		slog.Int("min_shared_count", minSharedCount),
		slog.Int("ownership_pairs", len(pairs)),
		slog.Int("total_games", len(results)),
	)

	return &entity.SharedGamesResult{
		Results: results,
		Meta: entity.SharedGamesMeta{
			MinSharedCount: minSharedCount,
			TotalGames:     len(results),
		},
	}, nil
}

// groupOwnersByGame indexes owners per app id, keeping pair order, and returns
// the app ids with at least minSharedCount owners.
func groupOwnersByGame(pairs []entity.OwnershipPair, minSharedCount int) (map[int64][]entity.GameOwner, []int64) {
	index := make(map[int64][]entity.GameOwner)
	for _, pair := range pairs {
		index[pair.AppID] = append(index[pair.AppID], entity.GameOwner{
			UserID:   pair.SteamID,
			Username: pair.Username,
		})
	}

	appIDs := make([]int64, 0, len(index))
	for appID, owners := range index {
		if len(owners) >= minSharedCount {
			appIDs = append(appIDs, appID)
		} else {
			delete(index, appID)
		}
	}
	sort.Slice(appIDs, func(i, j int) bool { return appIDs[i] < appIDs[j] })

	return index, appIDs
}

// rankSharedGames joins game details with their owners, most owners first and
// ties broken by ascending app id. Games without details are skipped.
func rankSharedGames(games []*entity.SteamGame, owners map[int64][]entity.GameOwner) []entity.SharedGame {
	results := make([]entity.SharedGame, 0, len(games))
	for _, game := range games {
		sharedBy, ok := owners[game.AppID]
		if !ok {
			continue
		}

		results = append(results, entity.SharedGame{
			Game: entity.SharedGameDetail{
				AppID:     game.AppID,
				Name:      game.Name,
				AppImgURL: game.AppImgURL,
			},
			SharedBy:    sharedBy,
			SharedCount: len(sharedBy),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].SharedCount != results[j].SharedCount {
			return results[i].SharedCount > results[j].SharedCount
		}

		return results[i].Game.AppID < results[j].Game.AppID
	})

	return results
}
