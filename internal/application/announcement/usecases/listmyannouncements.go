package usecases

import (
	"context"
	"fmt"

	"volunteerhub/internal/domain/announcement"
	"volunteerhub/internal/domain/event"
	"volunteerhub/internal/domain/user"
	"volunteerhub/internal/shared/logger"
)

type ListMyAnnouncementsQuery struct {
	UserID uint
}

// ListMyAnnouncementsUseCase returns the announcements whose send-time
// snapshot included the user, newest first.
type ListMyAnnouncementsUseCase struct {
	announcementRepo announcement.Repository
	eventRepo        event.Repository
	userRepo         user.Repository
	logger           logger.Interface
}

func NewListMyAnnouncementsUseCase(
	announcementRepo announcement.Repository,
	eventRepo event.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListMyAnnouncementsUseCase {
	return &ListMyAnnouncementsUseCase{
		announcementRepo: announcementRepo,
		eventRepo:        eventRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (uc *ListMyAnnouncementsUseCase) Execute(ctx context.Context, query ListMyAnnouncementsQuery) ([]*AnnouncementDTO, error) {
	announcements, err := uc.announcementRepo.ListByRecipient(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list announcements", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	senderIDs := make([]uint, 0, len(announcements))
	seen := make(map[uint]struct{})
	for _, a := range announcements {
		if _, ok := seen[a.CreatedBy()]; ok {
			continue
		}
		seen[a.CreatedBy()] = struct{}{}
		senderIDs = append(senderIDs, a.CreatedBy())
	}

	senders, err := uc.userRepo.GetByIDs(ctx, senderIDs)
	if err != nil {
		uc.logger.Errorw("failed to resolve senders", "error", err)
		return nil, fmt.Errorf("failed to resolve senders: %w", err)
	}
	senderByID := make(map[uint]*user.User, len(senders))
	for _, u := range senders {
		senderByID[u.ID()] = u
	}

	// Events may have been deleted since the send; the announcement still
	// reaches its snapshot, just without event context.
	eventByID := make(map[uint]*event.Event)

	dtos := make([]*AnnouncementDTO, 0, len(announcements))
	for _, a := range announcements {
		e, ok := eventByID[a.EventID()]
		if !ok {
			e, err = uc.eventRepo.GetByID(ctx, a.EventID())
			if err != nil {
				uc.logger.Errorw("failed to get event", "event_id", a.EventID(), "error", err)
				return nil, fmt.Errorf("failed to get event: %w", err)
			}
			eventByID[a.EventID()] = e
		}

		eventTitle, eventLocation := "", ""
		if e != nil {
			eventTitle, eventLocation = e.Title(), e.Location()
		}
		senderName := ""
		if sender, ok := senderByID[a.CreatedBy()]; ok {
			senderName = sender.Name()
		}

		dtos = append(dtos, toAnnouncementDTO(a, eventTitle, eventLocation, senderName, query.UserID))
	}
	return dtos, nil
}
