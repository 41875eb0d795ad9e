package usecases

import (
	"time"

	"volunteerhub/internal/domain/announcement"
)

// AnnouncementDTO is the application-level projection of an announcement,
// hydrated with event and sender context for display.
type AnnouncementDTO struct {
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

// toAnnouncementDTO projects an announcement for a specific reader; the
// Read flag is relative to that reader.
func toAnnouncementDTO(a *announcement.Announcement, eventTitle, eventLocation, creatorName string, readerID uint) *AnnouncementDTO {
	return &AnnouncementDTO{
		ID:            a.ID(),
		EventID:       a.EventID(),
		EventTitle:    eventTitle,
		EventLocation: eventLocation,
		Title:         a.Title(),
		Message:       a.Message(),
		CreatedBy:     creatorName,
		SentTo:        a.RecipientCount(),
		Read:          a.IsReadBy(readerID),
		CreatedAt:     a.CreatedAt(),
	}
}
