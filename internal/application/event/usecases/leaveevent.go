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

type LeaveEventCommand struct {
	EventID uint
	UserID  uint
}

type LeaveEventUseCase struct {
	eventRepo event.Repository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewLeaveEventUseCase(eventRepo event.Repository, userRepo user.Repository, logger logger.Interface) *LeaveEventUseCase {
	return &LeaveEventUseCase{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *LeaveEventUseCase) Execute(ctx context.Context, cmd LeaveEventCommand) (*EventDTO, error) {
	if err := uc.eventRepo.RemoveVolunteer(ctx, cmd.EventID, cmd.UserID); err != nil {
		switch {
		case stderrors.Is(err, event.ErrNotEnrolled):
			return nil, errors.NewConflictError("you are not enrolled in this event")
		case errors.IsNotFoundError(err):
			return nil, err
		default:
			uc.logger.Errorw("failed to leave event", "event_id", cmd.EventID, "user_id", cmd.UserID, "error", err)
			return nil, fmt.Errorf("failed to leave event: %w", err)
		}
	}

	uc.logger.Infow("volunteer left event", "event_id", cmd.EventID, "user_id", cmd.UserID)

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
