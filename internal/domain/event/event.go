package event

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	MinVolunteers = 1
	MaxVolunteers = 1000
)

// Enrollment transition errors. The application layer maps these onto the
// conflict error type.
var (
	ErrAlreadyEnrolled         = errors.New("user is already enrolled in this event")
	ErrEventFull               = errors.New("event has reached its volunteer capacity")
	ErrNotEnrolled             = errors.New("user is not enrolled in this event")
	ErrCapacityBelowEnrollment = errors.New("max volunteers cannot be reduced below current enrollment")
)

// Event is the aggregate owning the volunteer roster. The roster is an
// ordered set: insertion order is preserved and user IDs are unique.
// len(volunteers) <= maxVolunteers holds after every transition.
type Event struct {
	id            uint
	title         string
	description   string
	date          time.Time
	timeOfDay     string
	location      string
	category      string
	maxVolunteers int
	volunteers    []uint
	createdAt     time.Time
	updatedAt     time.Time
}

func NewEvent(title, description string, date time.Time, timeOfDay, location, category string, maxVolunteers int) (*Event, error) {
	if err := validateFields(title, description, date, timeOfDay, location, maxVolunteers); err != nil {
		return nil, err
	}

	if category == "" {
		category = "General"
	}

	now := time.Now()
	return &Event{
		title:         strings.TrimSpace(title),
		description:   strings.TrimSpace(description),
		date:          date,
		timeOfDay:     timeOfDay,
		location:      strings.TrimSpace(location),
		category:      category,
		maxVolunteers: maxVolunteers,
		volunteers:    []uint{},
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructEvent(
	id uint,
	title, description string,
	date time.Time,
	timeOfDay, location, category string,
	maxVolunteers int,
	volunteers []uint,
	createdAt, updatedAt time.Time,
) (*Event, error) {
	if id == 0 {
		return nil, fmt.Errorf("event ID cannot be zero")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if maxVolunteers < MinVolunteers || maxVolunteers > MaxVolunteers {
		return nil, fmt.Errorf("max volunteers must be between %d and %d", MinVolunteers, MaxVolunteers)
	}
	if len(volunteers) > maxVolunteers {
		return nil, fmt.Errorf("roster size %d exceeds capacity %d", len(volunteers), maxVolunteers)
	}

	roster := make([]uint, len(volunteers))
	copy(roster, volunteers)

	return &Event{
		id:            id,
		title:         title,
		description:   description,
		date:          date,
		timeOfDay:     timeOfDay,
		location:      location,
		category:      category,
		maxVolunteers: maxVolunteers,
		volunteers:    roster,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func validateFields(title, description string, date time.Time, timeOfDay, location string, maxVolunteers int) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description is required")
	}
	if date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if strings.TrimSpace(timeOfDay) == "" {
		return fmt.Errorf("time is required")
	}
	if strings.TrimSpace(location) == "" {
		return fmt.Errorf("location is required")
	}
	if maxVolunteers < MinVolunteers || maxVolunteers > MaxVolunteers {
		return fmt.Errorf("max volunteers must be between %d and %d", MinVolunteers, MaxVolunteers)
	}
	return nil
}

func (e *Event) ID() uint {
	return e.id
}

func (e *Event) Title() string {
	return e.title
}

func (e *Event) Description() string {
	return e.description
}

func (e *Event) Date() time.Time {
	return e.date
}

func (e *Event) TimeOfDay() string {
	return e.timeOfDay
}

func (e *Event) Location() string {
	return e.location
}

func (e *Event) Category() string {
	return e.category
}

func (e *Event) MaxVolunteers() int {
	return e.maxVolunteers
}

// Volunteers returns the roster in enrollment order.
func (e *Event) Volunteers() []uint {
	roster := make([]uint, len(e.volunteers))
	copy(roster, e.volunteers)
	return roster
}

func (e *Event) VolunteerCount() int {
	return len(e.volunteers)
}

func (e *Event) IsFull() bool {
	return len(e.volunteers) >= e.maxVolunteers
}

func (e *Event) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Event) UpdatedAt() time.Time {
	return e.updatedAt
}

func (e *Event) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("event ID cannot be zero")
	}
	e.id = id
	return nil
}

// IsEnrolled reports whether the user is on the roster.
func (e *Event) IsEnrolled(userID uint) bool {
	for _, v := range e.volunteers {
		if v == userID {
			return true
		}
	}
	return false
}

// Enroll adds the user to the roster. The transition is total: on error the
// roster is unchanged.
func (e *Event) Enroll(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	if e.IsEnrolled(userID) {
		return ErrAlreadyEnrolled
	}
	if e.IsFull() {
		return ErrEventFull
	}

	e.volunteers = append(e.volunteers, userID)
	e.updatedAt = time.Now()
	return nil
}

// Withdraw removes the user from the roster. Leaving is never capacity-bound.
func (e *Event) Withdraw(userID uint) error {
	for i, v := range e.volunteers {
		if v == userID {
			e.volunteers = append(e.volunteers[:i], e.volunteers[i+1:]...)
			e.updatedAt = time.Now()
			return nil
		}
	}
	return ErrNotEnrolled
}

// Update replaces the event details. Shrinking capacity below the current
// roster size is rejected so the capacity invariant keeps holding.
func (e *Event) Update(title, description string, date time.Time, timeOfDay, location, category string, maxVolunteers int) error {
	if err := validateFields(title, description, date, timeOfDay, location, maxVolunteers); err != nil {
		return err
	}
	if maxVolunteers < len(e.volunteers) {
		return ErrCapacityBelowEnrollment
	}

	e.title = strings.TrimSpace(title)
	e.description = strings.TrimSpace(description)
	e.date = date
	e.timeOfDay = timeOfDay
	e.location = strings.TrimSpace(location)
	if category != "" {
		e.category = category
	}
	e.maxVolunteers = maxVolunteers
	e.updatedAt = time.Now()

	return nil
}
