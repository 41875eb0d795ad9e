package announcement

import "context"

// Repository persists Announcement aggregates. GetByID returns (nil, nil)
// when the announcement does not exist.
//
// ListByRecipient returns announcements whose send-time snapshot included
// the user, newest first. MarkRead must be idempotent at the storage level:
// a duplicate receipt insert is swallowed, never surfaced.
type Repository interface {
	Create(ctx context.Context, ann *Announcement) error
	GetByID(ctx context.Context, id uint) (*Announcement, error)
	ListByRecipient(ctx context.Context, userID uint) ([]*Announcement, error)
	MarkRead(ctx context.Context, announcementID, userID uint) error
}
