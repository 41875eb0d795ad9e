package constants

// Gin context keys set by the auth middleware.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// Database table names.
const (
	TableUsers                  = "users"
	TableEvents                 = "events"
	TableEventVolunteers        = "event_volunteers"
	TableAnnouncements          = "announcements"
	TableAnnouncementRecipients = "announcement_recipients"
	TableAnnouncementReads      = "announcement_reads"
)
