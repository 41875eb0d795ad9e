package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"volunteerhub/internal/domain/user"
	"volunteerhub/internal/infrastructure/persistence/models"
	"volunteerhub/internal/shared/authorization"
	apperrors "volunteerhub/internal/shared/errors"
)

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, u *user.User) error {
	model := userToModel(u)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("email is already registered")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := u.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return userToEntity(&model)
}

func (r *UserRepositoryImpl) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if len(ids) == 0 {
		return []*user.User{}, nil
	}

	var modelList []*models.UserModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to get users by IDs: %w", err)
	}

	byID := make(map[uint]*user.User, len(modelList))
	for _, m := range modelList {
		entity, err := userToEntity(m)
		if err != nil {
			return nil, err
		}
		byID[entity.ID()] = entity
	}

	// Preserve the caller's ordering; vanished users are skipped.
	entities := make([]*user.User, 0, len(ids))
	for _, id := range ids {
		if entity, ok := byID[id]; ok {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return userToEntity(&model)
}

func (r *UserRepositoryImpl) Update(ctx context.Context, u *user.User) error {
	model := userToModel(u)

	// Same discipline as the event repository: a no-op save affects zero
	// rows on mysql, so existence gets its own query.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.UserModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		if count == 0 {
			return apperrors.NewNotFoundError("user not found")
		}

		if err := tx.Save(model).Error; err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		return nil
	})
}

func userToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Password:  u.PasswordHash(),
		Role:      u.Role().String(),
		Phone:     u.Phone(),
		Address:   u.Address(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func userToEntity(m *models.UserModel) (*user.User, error) {
	role, err := authorization.ParseUserRole(m.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to map user model to entity: %w", err)
	}

	entity, err := user.ReconstructUser(
		m.ID, m.Name, m.Email, m.Password,
		role,
		m.Phone, m.Address,
		m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map user model to entity: %w", err)
	}
	return entity, nil
}
