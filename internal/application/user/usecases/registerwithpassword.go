package usecases

import (
	"context"
	"fmt"

	"volunteerhub/internal/domain/user"
	"volunteerhub/internal/shared/authorization"
	"volunteerhub/internal/shared/errors"
	"volunteerhub/internal/shared/logger"
)

type RegisterWithPasswordCommand struct {
	Name     string
	Email    string
	Password string
}

type RegisterWithPasswordResult struct {
	User         *UserDTO
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type RegisterWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	jwtService     JWTService
	logger         logger.Interface
}

func NewRegisterWithPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *RegisterWithPasswordUseCase {
	return &RegisterWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func (uc *RegisterWithPasswordUseCase) Execute(ctx context.Context, cmd RegisterWithPasswordCommand) (*RegisterWithPasswordResult, error) {
	if len(cmd.Password) < 6 {
		return nil, errors.NewValidationError("password must be at least 6 characters")
	}

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Self-registration never grants admin. Elevated accounts are created
	// directly in the store.
	newUser, err := user.NewUser(cmd.Name, cmd.Email, hash, authorization.RoleVolunteer)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create user", "email", cmd.Email, "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokens, err := uc.jwtService.Generate(newUser.ID(), newUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "user_id", newUser.ID(), "error", err)
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "role", newUser.Role())

	return &RegisterWithPasswordResult{
		User:         toUserDTO(newUser),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
