package event

import "context"

// Repository persists Event aggregates. GetByID returns (nil, nil) when the
// event does not exist.
//
// AddVolunteer and RemoveVolunteer are the authoritative membership
// transitions: implementations must evaluate the capacity and uniqueness
// preconditions inside a single transaction so that concurrent joins can
// never push a roster past its capacity. They return ErrEventFull,
// ErrAlreadyEnrolled or ErrNotEnrolled from this package when a
// precondition fails.
type Repository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id uint) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	ListByVolunteer(ctx context.Context, userID uint) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id uint) error

	AddVolunteer(ctx context.Context, eventID, userID uint) error
	RemoveVolunteer(ctx context.Context, eventID, userID uint) error
}
