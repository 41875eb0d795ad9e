package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"volunteerhub/internal/domain/event"
	"volunteerhub/internal/domain/user"
	"volunteerhub/internal/shared/errors"
	"volunteerhub/internal/shared/logger"
)

type RemoveVolunteerCommand struct {
	EventID uint
	UserID  uint
}

// RemoveVolunteerUseCase is the admin-side withdrawal: it removes any
// volunteer from an event's roster.
type RemoveVolunteerUseCase struct {
	eventRepo event.Repository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewRemoveVolunteerUseCase(eventRepo event.Repository, userRepo user.Repository, logger logger.Interface) *RemoveVolunteerUseCase {
	return &RemoveVolunteerUseCase{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *RemoveVolunteerUseCase) Execute(ctx context.Context, cmd RemoveVolunteerCommand) (*EventDTO, error) {
	if err := uc.eventRepo.RemoveVolunteer(ctx, cmd.EventID, cmd.UserID); err != nil {
		switch {
		case stderrors.Is(err, event.ErrNotEnrolled):
			return nil, errors.NewConflictError("user is not enrolled in this event")
		case errors.IsNotFoundError(err):
			return nil, err
		default:
			uc.logger.Errorw("failed to remove volunteer", "event_id", cmd.EventID, "user_id", cmd.UserID, "error", err)
			return nil, fmt.Errorf("failed to remove volunteer: %w", err)
		}
	}

	uc.logger.Infow("volunteer removed from event", "event_id", cmd.EventID, "user_id", cmd.UserID)

	updatedEvent, err := uc.eventRepo.GetByID(ctx, cmd.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if updatedEvent == nil {
		return nil, errors.NewNotFoundError("event not found")
	}

	users, err := hydrateUsers(ctx, uc.userRepo, []*event.Event{updatedEvent})
	if err != nil {
		return nil, err
	}
	return toEventDTO(updatedEvent, users), nil
}
