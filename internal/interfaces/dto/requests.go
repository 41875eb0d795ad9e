// Package dto defines the HTTP request payloads.
package dto

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the payload for POST /api/auth/register. There is no
// role field: registration always creates a volunteer, and admin accounts
// are provisioned out of band.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// UpdateProfileRequest is the payload for PUT /api/users/profile.
// Email is deliberately absent: it is read-only once registered.
type UpdateProfileRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Address string `json:"address" validate:"omitempty,max=200"`
}

// EventRequest is the payload for POST /api/events and PUT /api/events/:id.
type EventRequest struct {
	Title         string `json:"title" validate:"required,max=200"`
	Description   string `json:"description" validate:"required,max=5000"`
	Date          string `json:"date" validate:"required"`
	Time          string `json:"time" validate:"required"`
	Location      string `json:"location" validate:"required,max=200"`
	Category      string `json:"category" validate:"omitempty,max=50"`
	MaxVolunteers int    `json:"maxVolunteers" validate:"required,gte=1,lte=1000"`
}

// SendAnnouncementRequest is the payload for POST /api/events/:id/announce.
type SendAnnouncementRequest struct {
	Title   string `json:"title" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required,max=10000"`
}
