package models

import (
	"time"

	"volunteerhub/internal/shared/constants"
)

type EventModel struct {
	ID            uint      `gorm:"primaryKey"`
	Title         string    `gorm:"size:255;not null"`
	Description   string    `gorm:"type:text;not null"`
	Date          time.Time `gorm:"not null"`
	Time          string    `gorm:"size:20;not null"`
	Location      string    `gorm:"size:255;not null"`
	Category      string    `gorm:"size:100;not null;default:'General'"`
	MaxVolunteers int       `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (EventModel) TableName() string {
	return constants.TableEvents
}

// EventVolunteerModel is one roster membership. The unique index gives the
// roster set semantics at the schema level.
type EventVolunteerModel struct {
	ID       uint      `gorm:"primaryKey"`
	EventID  uint      `gorm:"not null;index;uniqueIndex:idx_event_volunteer"`
	UserID   uint      `gorm:"not null;index;uniqueIndex:idx_event_volunteer"`
	JoinedAt time.Time `gorm:"not null"`
}

func (EventVolunteerModel) TableName() string {
	return constants.TableEventVolunteers
}
