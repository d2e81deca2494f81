package postgres

import (
	"context"
	"strings"

	"lastseen/internal/domain/entity"
	domainerrors "lastseen/internal/domain/errors"
	"lastseen/internal/domain/repository"
	"lastseen/internal/errors"
	"lastseen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindUserByID retrieves a single user with their connections.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindUsersByIDs retrieves the existing users among ids, connections included.
func (repo *userRepository) FindUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}

	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Preload("Connections").
		Where("id IN ?", ids).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by ids")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// FindUserByEmail retrieves a user by e-mail, compared case-insensitively.
func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email)))
}

// FindUserByShareToken resolves a public share token by exact match.
func (repo *userRepository) FindUserByShareToken(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, "public_share_token = ?", token)
}

func (repo *userRepository) findOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Connections").
		Where(query, args...).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// UpdateShareToken sets or clears the public share token.
func (repo *userRepository) UpdateShareToken(ctx context.Context, userID uuid.UUID, token *string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("public_share_token", token)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("share token collision")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update share token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AddConnection inserts the one-directional grant userID -> targetID.
func (repo *userRepository) AddConnection(ctx context.Context, userID, targetID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.UserConnectionModel{UserID: userID, TargetID: targetID})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to add connection")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConnectionExists
	}

	return nil
}

// RemoveConnection deletes the grant userID -> targetID.
func (repo *userRepository) RemoveConnection(ctx context.Context, userID, targetID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND target_id = ?", userID, targetID).
		Delete(&model.UserConnectionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove connection")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConnectionNotFound
	}

	return nil
}

// FindFollowerIDs returns the users that list ownerID as a connection.
func (repo *userRepository) FindFollowerIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	var followerIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.UserConnectionModel{}).
		Where("target_id = ?", ownerID).
		Pluck("user_id", &followerIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find followers")
	}

	return followerIDs, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	connections := make([]uuid.UUID, 0, len(data.Connections))
	for _, c := range data.Connections {
		connections = append(connections, c.TargetID)
	}

	return &entity.User{
		ID:               data.ID,
		Email:            data.Email,
		DisplayName:      data.DisplayName,
		AvatarRef:        data.AvatarRef,
		Connections:      connections,
		PublicShareToken: data.PublicShareToken,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
