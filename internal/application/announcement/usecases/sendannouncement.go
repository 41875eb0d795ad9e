package usecases

import (
	"context"
	"fmt"

	"volunteerhub/internal/domain/announcement"
	"volunteerhub/internal/domain/event"
	"volunteerhub/internal/domain/user"
	"volunteerhub/internal/shared/errors"
	"volunteerhub/internal/shared/logger"
)

type SendAnnouncementCommand struct {
	EventID uint
	UserID  uint
	Title   string
	Message string
}

type SendAnnouncementResult struct {
	Announcement *AnnouncementDTO
	SentTo       int
}

// SendAnnouncementUseCase distributes a message to an event's roster.
// Recipients are snapshotted at send time: volunteers who join the event
// afterwards never see the announcement, and volunteers who later leave
// keep it.
type SendAnnouncementUseCase struct {
	announcementRepo announcement.Repository
	eventRepo        event.Repository
	userRepo         user.Repository
	logger           logger.Interface
}

func NewSendAnnouncementUseCase(
	announcementRepo announcement.Repository,
	eventRepo event.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *SendAnnouncementUseCase {
	return &SendAnnouncementUseCase{
		announcementRepo: announcementRepo,
		eventRepo:        eventRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (uc *SendAnnouncementUseCase) Execute(ctx context.Context, cmd SendAnnouncementCommand) (*SendAnnouncementResult, error) {
	existingEvent, err := uc.eventRepo.GetByID(ctx, cmd.EventID)
	if err != nil {
		uc.logger.Errorw("failed to get event", "event_id", cmd.EventID, "error", err)
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if existingEvent == nil {
		return nil, errors.NewNotFoundError("event not found")
	}

	newAnnouncement, err := announcement.NewAnnouncement(cmd.EventID, cmd.Title, cmd.Message, cmd.UserID, existingEvent.Volunteers())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.announcementRepo.Create(ctx, newAnnouncement); err != nil {
		uc.logger.Errorw("failed to create announcement", "event_id", cmd.EventID, "error", err)
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	sender, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get sender", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to get sender: %w", err)
	}
	senderName := ""
	if sender != nil {
		senderName = sender.Name()
	}

	uc.logger.Infow("announcement sent",
		"announcement_id", newAnnouncement.ID(),
		"event_id", cmd.EventID,
		"sent_to", newAnnouncement.RecipientCount(),
	)

	return &SendAnnouncementResult{
		Announcement: toAnnouncementDTO(newAnnouncement, existingEvent.Title(), existingEvent.Location(), senderName, cmd.UserID),
		SentTo:       newAnnouncement.RecipientCount(),
	}, nil
}
