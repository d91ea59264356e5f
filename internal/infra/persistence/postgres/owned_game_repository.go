package postgres

import (
	"context"

	"magichat/internal/domain/entity"
	domainerrors "magichat/internal/domain/errors"
	"magichat/internal/domain/repository"
	"magichat/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// ownedGameRepository implements the repository.OwnedGameRepository interface.
type ownedGameRepository struct {
	db *gorm.DB
}

// NewOwnedGameRepository is the constructor for ownedGameRepository.
func NewOwnedGameRepository(db *gorm.DB) repository.OwnedGameRepository {
	return &ownedGameRepository{
		db: db,
	}
}

// FindByID retrieves a single ownership link by id.
func (repo *ownedGameRepository) FindByID(ctx context.Context, id int64) (*entity.OwnedGame, error) {
	var ownedM model.OwnedGameModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ownedM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnedGameNotFound
		}

		return nil, errors.Wrap(err, "failed to find owned game by id")
	}

	return toOwnedGameDomain(&ownedM), nil
}

// List returns a page of links ordered by id.
func (repo *ownedGameRepository) List(ctx context.Context, filter repository.OwnedGameFilter) ([]*entity.OwnedGame, error) {
	opts := filter.ListOptions.Normalize()

	query := repo.db.WithContext(ctx).Model(&model.OwnedGameModel{})
	if filter.SteamID != "" {
		query = query.Where("steam_id = ?", filter.SteamID)
	}
	if filter.AppID != 0 {
		query = query.Where("app_id = ?", filter.AppID)
	}

	var ownedModels []*model.OwnedGameModel
	if err := query.
		Order("id ASC").
		Limit(opts.Limit).
		Offset(opts.Offset).
		Find(&ownedModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list owned games")
	}

	owned := make([]*entity.OwnedGame, 0, len(ownedModels))
	for _, ownedM := range ownedModels {
		owned = append(owned, toOwnedGameDomain(ownedM))
	}

	return owned, nil
}

// Create persists a new ownership link.
func (repo *ownedGameRepository) Create(ctx context.Context, ownedGame *entity.OwnedGame) error {
	ownedM := fromOwnedGameDomain(ownedGame)

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(ownedM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOwnedGame
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOwnedGameReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create owned game")
	}

	ownedGame.ID = ownedM.ID
	ownedGame.CreatedAt = ownedM.CreatedAt

	return nil
}

// FirstOrCreate links the user to the game unless the link already exists,
// then returns the stored link.
func (repo *ownedGameRepository) FirstOrCreate(ctx context.Context, steamID string, appID int64) (*entity.OwnedGame, error) {
	ownedM := &model.OwnedGameModel{
		SteamID: steamID,
		AppID:   appID,
	}

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "steam_id"}, {Name: "app_id"}},
			DoNothing: true,
		}).
		Create(ownedM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrOwnedGameReference
		}

		return nil, errors.Wrap(err, "failed to get or create owned game")
	}

	var stored model.OwnedGameModel
	if err := repo.db.WithContext(ctx).
		Where("steam_id = ? AND app_id = ?", steamID, appID).
		First(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load owned game")
	}

	return toOwnedGameDomain(&stored), nil
}

// Delete removes an ownership link by id.
func (repo *ownedGameRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OwnedGameModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete owned game")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOwnedGameNotFound
	}

	return nil
}

// DeleteStale removes the user's links to games outside keepAppIDs.
func (repo *ownedGameRepository) DeleteStale(ctx context.Context, steamID string, keepAppIDs []int64) (int64, error) {
	query := repo.db.WithContext(ctx).Where("steam_id = ?", steamID)
	if len(keepAppIDs) > 0 {
		query = query.Where("app_id NOT IN ?", keepAppIDs)
	}

	result := query.Delete(&model.OwnedGameModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete stale owned games")
	}

	return result.RowsAffected, nil
}

// ListOwnershipPairs reads every (user, game) pair with one JOIN, routed to a
// replica when one is configured.
func (repo *ownedGameRepository) ListOwnershipPairs(ctx context.Context) ([]entity.OwnershipPair, error) {
	var pairs []entity.OwnershipPair
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Table("owned_games").
		Select("steam_users.steam_id AS steam_id, steam_users.username AS username, owned_games.app_id AS app_id").
		Joins("JOIN steam_users ON steam_users.steam_id = owned_games.steam_id").
		Order("steam_users.created_at ASC, steam_users.steam_id ASC, owned_games.id ASC").
		Scan(&pairs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ownership pairs")
	}

	return pairs, nil
}

func toOwnedGameDomain(data *model.OwnedGameModel) *entity.OwnedGame {
	if data == nil {
		return nil
	}

	return &entity.OwnedGame{
		ID:        data.ID,
		SteamID:   data.SteamID,
		AppID:     data.AppID,
		CreatedAt: data.CreatedAt,
	}
}

func fromOwnedGameDomain(data *entity.OwnedGame) *model.OwnedGameModel {
	if data == nil {
		return nil
	}

	return &model.OwnedGameModel{
		ID:        data.ID,
		SteamID:   data.SteamID,
		AppID:     data.AppID,
		CreatedAt: data.CreatedAt,
	}
}
