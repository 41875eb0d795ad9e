package usecases

import "volunteerhub/internal/domain/user"

func toUserDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      u.Role(),
		Phone:     u.Phone(),
		Address:   u.Address(),
		CreatedAt: u.CreatedAt(),
	}
}
