package models

import (
	"time"

	"volunteerhub/internal/shared/constants"
)

type AnnouncementModel struct {
	ID        uint   `gorm:"primaryKey"`
	EventID   uint   `gorm:"not null;index"`
	Title     string `gorm:"size:255;not null"`
	Message   string `gorm:"type:text;not null"`
	CreatedBy uint   `gorm:"not null;index"`
	CreatedAt time.Time
}

func (AnnouncementModel) TableName() string {
	return constants.TableAnnouncements
}

// AnnouncementRecipientModel is the roster snapshot taken when the
// announcement was sent.
type AnnouncementRecipientModel struct {
	ID             uint `gorm:"primaryKey"`
	AnnouncementID uint `gorm:"not null;index;uniqueIndex:idx_announcement_recipient"`
	UserID         uint `gorm:"not null;index;uniqueIndex:idx_announcement_recipient"`
}

func (AnnouncementRecipientModel) TableName() string {
	return constants.TableAnnouncementRecipients
}

// AnnouncementReadModel is a per-user read receipt. The unique index keeps
// read marking idempotent at the schema level.
type AnnouncementReadModel struct {
	ID             uint      `gorm:"primaryKey"`
	AnnouncementID uint      `gorm:"not null;index;uniqueIndex:idx_announcement_read"`
	UserID         uint      `gorm:"not null;index;uniqueIndex:idx_announcement_read"`
	ReadAt         time.Time `gorm:"not null"`
}

func (AnnouncementReadModel) TableName() string {
	return constants.TableAnnouncementReads
}
