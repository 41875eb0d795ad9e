package volunteer

import (
	"encoding/json"
	"fmt"
	"time"
)

// User is a coordination service account.
type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}

// Volunteer is a roster entry on an event.
type Volunteer struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Event is a coordination event with its current roster.
type Event struct {
	ID            uint        `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Date          string      `json:"date"`
	Time          string      `json:"time"`
	Location      string      `json:"location"`
	Category      string      `json:"category"`
	MaxVolunteers int         `json:"maxVolunteers"`
	Volunteers    []Volunteer `json:"volunteers"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// IsFull reports whether the roster has reached capacity.
func (e *Event) IsFull() bool {
	return len(e.Volunteers) >= e.MaxVolunteers
}

// HasVolunteer reports whether the user is on the roster.
func (e *Event) HasVolunteer(userID uint) bool {
	for _, v := range e.Volunteers {
		if v.ID == userID {
			return true
		}
	}
	return false
}

// SpotsLeft returns the number of open roster positions.
func (e *Event) SpotsLeft() int {
	left := e.MaxVolunteers - len(e.Volunteers)
	if left < 0 {
		return 0
	}
	return left
}

// EventRequest is the payload for creating or replacing an event.
type EventRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Location      string `json:"location"`
	Category      string `json:"category"`
	MaxVolunteers int    `json:"maxVolunteers"`
}

// Announcement is an inbox entry. Read is relative to the authenticated user.
type Announcement struct {
	ID            uint      `json:"id"`
	EventID       uint      `json:"eventId"`
	EventTitle    string    `json:"eventTitle"`
	EventLocation string    `json:"eventLocation"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	CreatedBy     string    `json:"createdBy"`
	SentTo        int       `json:"sentTo"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SendResult reports the outcome of an announcement send.
type SendResult struct {
	Announcement *Announcement
	SentTo       int
}

// ErrorKind classifies API failures so callers can branch without parsing
// messages.
type ErrorKind string

const (
	ErrKindValidation   ErrorKind = "validation"
	ErrKindUnauthorized ErrorKind = "unauthorized"
	ErrKindForbidden    ErrorKind = "forbidden"
	ErrKindNotFound     ErrorKind = "not_found"
	ErrKindConflict     ErrorKind = "conflict"
	ErrKindServer       ErrorKind = "server"
	ErrKindNetwork      ErrorKind = "network"
)

// APIError is a typed failure returned by the coordination service.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
}

// IsConflict reports whether err is an APIError with the conflict kind.
func IsConflict(err error) bool {
	return errKindIs(err, ErrKindConflict)
}

// IsUnauthorized reports whether err is an APIError with the unauthorized kind.
func IsUnauthorized(err error) bool {
	return errKindIs(err, ErrKindUnauthorized)
}

// IsForbidden reports whether err is an APIError with the forbidden kind.
func IsForbidden(err error) bool {
	return errKindIs(err, ErrKindForbidden)
}

// IsNotFound reports whether err is an APIError with the not found kind.
func IsNotFound(err error) bool {
	return errKindIs(err, ErrKindNotFound)
}

func errKindIs(err error, kind ErrorKind) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Kind == kind
}

// apiResponse mirrors the server's response envelope.
type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *apiErrorInfo   `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

type apiErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
