package volunteer

import (
	"context"
	"fmt"
	"net/http"
)

// ErrNoRecipients reports that a send would reach nobody. Use
// ProposeAnnouncement and confirm the pending send explicitly to deliver
// to an empty roster anyway.
var ErrNoRecipients = &APIError{Kind: ErrKindConflict, Message: "announcement would reach no volunteers"}

// PendingAnnouncement is a prepared send. Recipients reflects the roster at
// proposal time; the server snapshots again at the actual send, so the
// final count can differ if the roster changed in between.
type PendingAnnouncement struct {
	client  *Client
	eventID uint
	title   string
	message string

	Recipients int
}

type sendAnnouncementPayload struct {
	Announcement *Announcement `json:"announcement"`
	SentTo       int           `json:"sentTo"`
}

// ProposeAnnouncement prepares a send against the event's current roster
// without delivering anything.
func (c *Client) ProposeAnnouncement(ctx context.Context, eventID uint, title, message string) (*PendingAnnouncement, error) {
	e, err := c.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return &PendingAnnouncement{
		client:     c,
		eventID:    eventID,
		title:      title,
		message:    message,
		Recipients: len(e.Volunteers),
	}, nil
}

// Confirm delivers the pending announcement. Safe to call for an empty
// roster; the send is recorded with zero recipients.
func (p *PendingAnnouncement) Confirm(ctx context.Context) (*SendResult, error) {
	key := fmt.Sprintf("announce:%d", p.eventID)
	reqID, release, ok := p.client.beginOperation(key)
	if !ok {
		return nil, ErrOperationInFlight
	}
	defer release()

	var payload sendAnnouncementPayload
	err := p.client.doRequest(ctx, http.MethodPost, fmt.Sprintf("/api/events/%d/announce", p.eventID), map[string]string{
		"title":   p.title,
		"message": p.message,
	}, &payload)
	if err != nil {
		return nil, err
	}
	if !p.client.operationCurrent(key, reqID) {
		return nil, ErrStaleResult
	}

	return &SendResult{Announcement: payload.Announcement, SentTo: payload.SentTo}, nil
}

// SendAnnouncement proposes and confirms in one step. When the proposal
// finds an empty roster it returns ErrNoRecipients instead of sending;
// callers that mean it use ProposeAnnouncement plus Confirm.
func (c *Client) SendAnnouncement(ctx context.Context, eventID uint, title, message string) (*SendResult, error) {
	pending, err := c.ProposeAnnouncement(ctx, eventID, title, message)
	if err != nil {
		return nil, err
	}
	if pending.Recipients == 0 {
		return nil, ErrNoRecipients
	}
	return pending.Confirm(ctx)
}

// MyAnnouncements fetches the authenticated user's inbox, newest first.
// Membership is decided by the send-time snapshot: joining an event later
// does not surface older announcements, and leaving does not remove them.
func (c *Client) MyAnnouncements(ctx context.Context) ([]Announcement, error) {
	var announcements []Announcement
	if err := c.doRequest(ctx, http.MethodGet, "/api/announcements/my-announcements", nil, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

// MarkAnnouncementRead records a read receipt. Marking twice is a no-op
// success.
func (c *Client) MarkAnnouncementRead(ctx context.Context, announcementID uint) error {
	return c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/api/announcements/%d/read", announcementID), nil, nil)
}
