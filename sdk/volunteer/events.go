package volunteer

import (
	"context"
	"fmt"
	"net/http"
)

// Event registry calls follow a refetch-over-patch policy: a mutation's
// response carries the server's authoritative event snapshot, and list
// views are refreshed by refetching rather than splicing local copies.

// ListEvents fetches all events, newest first.
func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := c.doRequest(ctx, http.MethodGet, "/api/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent fetches a single event with its roster.
func (c *Client) GetEvent(ctx context.Context, eventID uint) (*Event, error) {
	var e Event
	if err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/api/events/%d", eventID), nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateEvent creates an event. Admin only.
func (c *Client) CreateEvent(ctx context.Context, req EventRequest) (*Event, error) {
	var e Event
	if err := c.doRequest(ctx, http.MethodPost, "/api/events", req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateEvent replaces an event's fields. Admin only. Shrinking capacity
// below the current roster fails with a conflict.
func (c *Client) UpdateEvent(ctx context.Context, eventID uint, req EventRequest) (*Event, error) {
	var e Event
	if err := c.doRequest(ctx, http.MethodPut, fmt.Sprintf("/api/events/%d", eventID), req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteEvent removes an event and its roster. Admin only. Announcements
// already sent for the event remain in their recipients' inboxes.
func (c *Client) DeleteEvent(ctx context.Context, eventID uint) error {
	return c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/events/%d", eventID), nil, nil)
}

// ErrOperationInFlight reports that an identical mutation has not yet
// completed. The first request's outcome stands; the caller should wait
// for it instead of firing another.
var ErrOperationInFlight = &APIError{Kind: ErrKindConflict, Message: "operation already in flight"}

// ErrStaleResult reports that a mutation completed after the session that
// issued it was torn down. Its request id was superseded, so the result is
// discarded instead of being applied against the new session.
var ErrStaleResult = &APIError{Kind: ErrKindConflict, Message: "result discarded: session changed while the request was in flight"}

// JoinEvent enrolls the authenticated volunteer. The server decides
// capacity: a full roster or duplicate join comes back as a conflict, never
// as a partial local update. Concurrent joins for the same event from this
// client are collapsed into one request.
func (c *Client) JoinEvent(ctx context.Context, eventID uint) (*Event, error) {
	key := fmt.Sprintf("join:%d", eventID)
	reqID, release, ok := c.beginOperation(key)
	if !ok {
		return nil, ErrOperationInFlight
	}
	defer release()

	var e Event
	if err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/api/events/%d/join", eventID), nil, &e); err != nil {
		return nil, err
	}
	if !c.operationCurrent(key, reqID) {
		return nil, ErrStaleResult
	}
	return &e, nil
}

// LeaveEvent withdraws the authenticated volunteer.
func (c *Client) LeaveEvent(ctx context.Context, eventID uint) (*Event, error) {
	key := fmt.Sprintf("leave:%d", eventID)
	reqID, release, ok := c.beginOperation(key)
	if !ok {
		return nil, ErrOperationInFlight
	}
	defer release()

	var e Event
	if err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/api/events/%d/leave", eventID), nil, &e); err != nil {
		return nil, err
	}
	if !c.operationCurrent(key, reqID) {
		return nil, ErrStaleResult
	}
	return &e, nil
}

// RemoveVolunteer withdraws any volunteer from an event. Admin only.
func (c *Client) RemoveVolunteer(ctx context.Context, eventID, userID uint) (*Event, error) {
	var e Event
	if err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/events/%d/volunteers/%d", eventID, userID), nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// MyEvents fetches the events the authenticated volunteer is enrolled in.
func (c *Client) MyEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := c.doRequest(ctx, http.MethodGet, "/api/users/my-events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// IsEnrolled reports whether the authenticated user is on the event's
// roster, judged from the given server snapshot.
func (c *Client) IsEnrolled(e *Event) bool {
	u := c.CurrentUser()
	if u == nil || e == nil {
		return false
	}
	return e.HasVolunteer(u.ID)
}
