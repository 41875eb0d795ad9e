package announcement

import (
	"fmt"
	"strings"
	"time"
)

// ReadReceipt records that a recipient acknowledged an announcement.
type ReadReceipt struct {
	UserID uint
	ReadAt time.Time
}

// Announcement is scoped to a single event. Its recipient set is a snapshot
// of the event roster taken at send time; later joiners are not backfilled.
// The aggregate owns its read receipts: at most one per user.
type Announcement struct {
	id         uint
	eventID    uint
	title      string
	message    string
	createdBy  uint
	recipients []uint
	readBy     []ReadReceipt
	createdAt  time.Time
}

// NewAnnouncement creates an announcement addressed to the given roster
// snapshot. An empty snapshot is valid: sending to an event with no
// volunteers is permitted and simply reaches nobody.
func NewAnnouncement(eventID uint, title, message string, createdBy uint, roster []uint) (*Announcement, error) {
	if eventID == 0 {
		return nil, fmt.Errorf("event ID is required")
	}
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("message is required")
	}
	if len(message) > 10000 {
		return nil, fmt.Errorf("message exceeds maximum length of 10000 characters")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	if strings.TrimSpace(title) == "" {
		title = "Announcement"
	}

	recipients := make([]uint, len(roster))
	copy(recipients, roster)

	return &Announcement{
		eventID:    eventID,
		title:      strings.TrimSpace(title),
		message:    strings.TrimSpace(message),
		createdBy:  createdBy,
		recipients: recipients,
		readBy:     []ReadReceipt{},
		createdAt:  time.Now(),
	}, nil
}

func ReconstructAnnouncement(
	id uint,
	eventID uint,
	title, message string,
	createdBy uint,
	recipients []uint,
	readBy []ReadReceipt,
	createdAt time.Time,
) (*Announcement, error) {
	if id == 0 {
		return nil, fmt.Errorf("announcement ID cannot be zero")
	}
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}

	recipientsCopy := make([]uint, len(recipients))
	copy(recipientsCopy, recipients)

	readByCopy := make([]ReadReceipt, len(readBy))
	copy(readByCopy, readBy)

	return &Announcement{
		id:         id,
		eventID:    eventID,
		title:      title,
		message:    message,
		createdBy:  createdBy,
		recipients: recipientsCopy,
		readBy:     readByCopy,
		createdAt:  createdAt,
	}, nil
}

func (a *Announcement) ID() uint {
	return a.id
}

func (a *Announcement) EventID() uint {
	return a.eventID
}

func (a *Announcement) Title() string {
	return a.title
}

func (a *Announcement) Message() string {
	return a.message
}

func (a *Announcement) CreatedBy() uint {
	return a.createdBy
}

func (a *Announcement) CreatedAt() time.Time {
	return a.createdAt
}

// Recipients returns the roster snapshot taken at send time.
func (a *Announcement) Recipients() []uint {
	recipients := make([]uint, len(a.recipients))
	copy(recipients, a.recipients)
	return recipients
}

func (a *Announcement) RecipientCount() int {
	return len(a.recipients)
}

func (a *Announcement) ReadBy() []ReadReceipt {
	readBy := make([]ReadReceipt, len(a.readBy))
	copy(readBy, a.readBy)
	return readBy
}

func (a *Announcement) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("announcement ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("announcement ID cannot be zero")
	}
	a.id = id
	return nil
}

// IsReadBy reports whether the user has acknowledged the announcement.
func (a *Announcement) IsReadBy(userID uint) bool {
	for _, r := range a.readBy {
		if r.UserID == userID {
			return true
		}
	}
	return false
}

// IsRecipient reports whether the user was part of the send-time snapshot.
func (a *Announcement) IsRecipient(userID uint) bool {
	for _, r := range a.recipients {
		if r == userID {
			return true
		}
	}
	return false
}

// MarkRead records a read receipt for the user. Marking an already-read
// announcement is a no-op defined as success, so the receipt set never
// holds more than one entry per user.
func (a *Announcement) MarkRead(userID uint) error {
	if userID == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	if a.IsReadBy(userID) {
		return nil
	}

	a.readBy = append(a.readBy, ReadReceipt{UserID: userID, ReadAt: time.Now()})
	return nil
}
