package authorization

import "fmt"

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleVolunteer UserRole = "volunteer"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleVolunteer
}

// ParseUserRole maps a stored role string to a UserRole. Unknown strings
// are an error, never coerced to a lesser role.
func ParseUserRole(s string) (UserRole, error) {
	role := UserRole(s)
	if !role.IsValid() {
		return "", fmt.Errorf("unknown user role %q", s)
	}
	return role, nil
}
