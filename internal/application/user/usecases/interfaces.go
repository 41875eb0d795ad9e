package usecases

import (
	"time"

	"volunteerhub/internal/shared/authorization"
)

// TokenPair mirrors the token material produced by the JWT service.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// JWTService signs session tokens for authenticated users.
type JWTService interface {
	Generate(userID uint, role authorization.UserRole) (*TokenPair, error)
}

// UserDTO is the application-level projection of a user.
type UserDTO struct {
	ID        uint                   `json:"id"`
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	Role      authorization.UserRole `json:"role"`
	Phone     string                 `json:"phone"`
	Address   string                 `json:"address"`
	CreatedAt time.Time              `json:"createdAt"`
}
