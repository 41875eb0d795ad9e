package usecases

import (
	"context"
	"fmt"
	"time"

	"volunteerhub/internal/domain/event"
	"volunteerhub/internal/domain/user"
)

// VolunteerDTO is the roster entry projection embedded in event responses.
type VolunteerDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EventDTO is the application-level projection of an event, with its
// roster hydrated into volunteer summaries.
type EventDTO struct {
	ID            uint           `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Date          string         `json:"date"`
	Time          string         `json:"time"`
	Location      string         `json:"location"`
	Category      string         `json:"category"`
	MaxVolunteers int            `json:"maxVolunteers"`
	Volunteers    []VolunteerDTO `json:"volunteers"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func toEventDTO(e *event.Event, users map[uint]*user.User) *EventDTO {
	roster := make([]VolunteerDTO, 0, e.VolunteerCount())
	for _, userID := range e.Volunteers() {
		u, ok := users[userID]
		if !ok {
			continue
		}
		roster = append(roster, VolunteerDTO{
			ID:    u.ID(),
			Name:  u.Name(),
			Email: u.Email(),
		})
	}

	return &EventDTO{
		ID:            e.ID(),
		Title:         e.Title(),
		Description:   e.Description(),
		Date:          e.Date().Format("2006-01-02"),
		Time:          e.TimeOfDay(),
		Location:      e.Location(),
		Category:      e.Category(),
		MaxVolunteers: e.MaxVolunteers(),
		Volunteers:    roster,
		CreatedAt:     e.CreatedAt(),
	}
}

// hydrateUsers resolves every roster member across the given events in a
// single lookup.
func hydrateUsers(ctx context.Context, userRepo user.Repository, events []*event.Event) (map[uint]*user.User, error) {
	seen := make(map[uint]struct{})
	var ids []uint
	for _, e := range events {
		for _, userID := range e.Volunteers() {
			if _, ok := seen[userID]; ok {
				continue
			}
			seen[userID] = struct{}{}
			ids = append(ids, userID)
		}
	}

	users, err := userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve volunteers: %w", err)
	}

	byID := make(map[uint]*user.User, len(users))
	for _, u := range users {
		byID[u.ID()] = u
	}
	return byID, nil
}
