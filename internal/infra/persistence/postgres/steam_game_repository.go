package postgres

import (
	"context"
	"strings"
	"time"

	"magichat/internal/domain/entity"
	domainerrors "magichat/internal/domain/errors"
	"magichat/internal/domain/repository"
	"magichat/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// deleteExclusivelyOwnedGamesSQL removes the games whose only owner is the given user.
// The ownership check and the delete are one statement.
const deleteExclusivelyOwnedGamesSQL = `DELETE FROM steam_games WHERE app_id IN (
	SELECT o.app_id FROM owned_games o
	WHERE o.steam_id = ?
	AND NOT EXISTS (
		SELECT 1 FROM owned_games o2 WHERE o2.app_id = o.app_id AND o2.steam_id <> ?
	)
)`

// steamGameRepository implements the repository.SteamGameRepository interface.
type steamGameRepository struct {
	db *gorm.DB
}

// NewSteamGameRepository is the constructor for steamGameRepository.
func NewSteamGameRepository(db *gorm.DB) repository.SteamGameRepository {
	return &steamGameRepository{
		db: db,
	}
}

// FindByAppID retrieves a single game by app id.
func (repo *steamGameRepository) FindByAppID(ctx context.Context, appID int64) (*entity.SteamGame, error) {
	var gameM model.SteamGameModel

	if err := repo.db.WithContext(ctx).
		Where("app_id = ?", appID).
		First(&gameM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSteamGameNotFound
		}

		return nil, errors.Wrap(err, "failed to find steam game by app id")
	}

	return toSteamGameDomain(&gameM), nil
}

// FindByAppIDs loads the listed games with a single IN query.
func (repo *steamGameRepository) FindByAppIDs(ctx context.Context, appIDs []int64) ([]*entity.SteamGame, error) {
	if len(appIDs) == 0 {
		return []*entity.SteamGame{}, nil
	}

	var gameModels []*model.SteamGameModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("app_id IN ?", appIDs).
		Order("app_id ASC").
		Find(&gameModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find steam games by app ids")
	}

	return toSteamGameDomains(gameModels), nil
}

// List returns a page of games ordered by app id.
func (repo *steamGameRepository) List(ctx context.Context, filter repository.GameFilter) ([]*entity.SteamGame, error) {
	opts := filter.ListOptions.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.SteamGameModel{})
	if name := strings.TrimSpace(filter.Name); name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	var gameModels []*model.SteamGameModel
	if err := query.
		Order("app_id ASC").
		Limit(opts.Limit).
		Offset(opts.Offset).
		Find(&gameModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list steam games")
	}

	return toSteamGameDomains(gameModels), nil
}

// ListByOwner returns the games a user owns in link insertion order.
func (repo *steamGameRepository) ListByOwner(ctx context.Context, steamID string) ([]*entity.SteamGame, error) {
	var gameModels []*model.SteamGameModel
	if err := repo.db.WithContext(ctx).
		Joins("JOIN owned_games ON owned_games.app_id = steam_games.app_id").
		Where("owned_games.steam_id = ?", steamID).
		Order("owned_games.id ASC").
		Find(&gameModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list steam games by owner")
	}

	return toSteamGameDomains(gameModels), nil
}

// Create persists a new game.
func (repo *steamGameRepository) Create(ctx context.Context, game *entity.SteamGame) error {
	gameM := fromSteamGameDomain(game)

	if err := repo.db.WithContext(ctx).Create(gameM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSteamGame
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create steam game")
	}

	game.CreatedAt = gameM.CreatedAt
	game.UpdatedAt = gameM.UpdatedAt

	return nil
}

// FirstOrCreate inserts the game unless its app id is already stored, then
// returns the stored row. Concurrent callers converge on the same row.
func (repo *steamGameRepository) FirstOrCreate(ctx context.Context, game *entity.SteamGame) (*entity.SteamGame, error) {
	gameM := fromSteamGameDomain(game)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "app_id"}},
			DoNothing: true,
		}).
		Create(gameM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to get or create steam game")
	}

	return repo.FindByAppID(ctx, game.AppID)
}

// Update overwrites name and image of an existing game.
func (repo *steamGameRepository) Update(ctx context.Context, game *entity.SteamGame) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SteamGameModel{}).
		Where("app_id = ?", game.AppID).
		Updates(map[string]any{
			"name":        game.Name,
			"app_img_url": game.AppImgURL,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update steam game")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSteamGameNotFound
	}

	stored, err := repo.FindByAppID(ctx, game.AppID)
	if err != nil {
		return err
	}
	*game = *stored

	return nil
}

// Delete removes a game. Ownership rows go with it through the foreign key.
func (repo *steamGameRepository) Delete(ctx context.Context, appID int64) error {
	result := repo.db.WithContext(ctx).
		Where("app_id = ?", appID).
		Delete(&model.SteamGameModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete steam game")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSteamGameNotFound
	}

	return nil
}

// DeleteExclusivelyOwnedBy removes every game owned by the user and nobody else.
func (repo *steamGameRepository) DeleteExclusivelyOwnedBy(ctx context.Context, steamID string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Exec(deleteExclusivelyOwnedGamesSQL, steamID, steamID)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete exclusively owned steam games")
	}

	return result.RowsAffected, nil
}

func toSteamGameDomain(data *model.SteamGameModel) *entity.SteamGame {
	if data == nil {
		return nil
	}

	return &entity.SteamGame{
		AppID:     data.AppID,
		Name:      data.Name,
		AppImgURL: data.AppImgURL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toSteamGameDomains(data []*model.SteamGameModel) []*entity.SteamGame {
	games := make([]*entity.SteamGame, 0, len(data))
	for _, gameM := range data {
		games = append(games, toSteamGameDomain(gameM))
	}

	return games
}

func fromSteamGameDomain(data *entity.SteamGame) *model.SteamGameModel {
	if data == nil {
		return nil
	}

	return &model.SteamGameModel{
		AppID:     data.AppID,
		Name:      data.Name,
		AppImgURL: data.AppImgURL,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
