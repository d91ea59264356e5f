package postgres

import (
	"context"

	"magichat/internal/domain/entity"
	"magichat/internal/domain/repository"
	"magichat/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// steamUserRepository implements the repository.SteamUserRepository interface.
type steamUserRepository struct {
	db *gorm.DB
}

// NewSteamUserRepository is the constructor for steamUserRepository.
func NewSteamUserRepository(db *gorm.DB) repository.SteamUserRepository {
	return &steamUserRepository{
		db: db,
	}
}

// FindBySteamID retrieves a single user by steam id.
func (repo *steamUserRepository) FindBySteamID(ctx context.Context, steamID string) (*entity.SteamUser, error) {
	var userM model.SteamUserModel

	if err := repo.db.WithContext(ctx).
		Where("steam_id = ?", steamID).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSteamUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find steam user by steam id")
	}

	return toSteamUserDomain(&userM), nil
}

// List returns a page of users in creation order.
func (repo *steamUserRepository) List(ctx context.Context, opts repository.ListOptions) ([]*entity.SteamUser, error) {
	opts = opts.Normalize()

	var userModels []*model.SteamUserModel
	if err := repo.db.WithContext(ctx).
		Order("created_at ASC, steam_id ASC").
		Limit(opts.Limit).
		Offset(opts.Offset).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list steam users")
	}

	return toSteamUserDomains(userModels), nil
}

// ListByOwnedGame returns the owners of a game in link insertion order.
func (repo *steamUserRepository) ListByOwnedGame(ctx context.Context, appID int64) ([]*entity.SteamUser, error) {
	var userModels []*model.SteamUserModel
	if err := repo.db.WithContext(ctx).
		Joins("JOIN owned_games ON owned_games.steam_id = steam_users.steam_id").
		Where("owned_games.app_id = ?", appID).
		Order("owned_games.id ASC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list steam users by owned game")
	}

	return toSteamUserDomains(userModels), nil
}

// Upsert inserts the user or overwrites the profile fields of an existing row.
// The creation timestamp of an existing row is kept.
func (repo *steamUserRepository) Upsert(ctx context.Context, user *entity.SteamUser) error {
	userM := fromSteamUserDomain(user)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "steam_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "profile_img_url", "updated_at"}),
		}).
		Create(userM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert steam user")
	}

	stored, err := repo.FindBySteamID(ctx, user.SteamID)
	if err != nil {
		return err
	}
	*user = *stored

	return nil
}

// Delete removes a user. Ownership rows go with it through the foreign key.
func (repo *steamUserRepository) Delete(ctx context.Context, steamID string) error {
	result := repo.db.WithContext(ctx).
		Where("steam_id = ?", steamID).
		Delete(&model.SteamUserModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete steam user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSteamUserNotFound
	}

	return nil
}

func toSteamUserDomain(data *model.SteamUserModel) *entity.SteamUser {
	if data == nil {
		return nil
	}

	return &entity.SteamUser{
		SteamID:       data.SteamID,
		Username:      data.Username,
		ProfileImgURL: data.ProfileImgURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toSteamUserDomains(data []*model.SteamUserModel) []*entity.SteamUser {
	users := make([]*entity.SteamUser, 0, len(data))
	for _, userM := range data {
		users = append(users, toSteamUserDomain(userM))
	}

	return users
}

func fromSteamUserDomain(data *entity.SteamUser) *model.SteamUserModel {
	if data == nil {
		return nil
	}

	return &model.SteamUserModel{
		SteamID:       data.SteamID,
		Username:      data.Username,
		ProfileImgURL: data.ProfileImgURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
