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

type JoinEventCommand struct {
	EventID uint
	UserID  uint
}

// JoinEventUseCase enrolls a volunteer. The capacity and uniqueness checks
// run inside the repository transaction, so a concurrent join for the last
// seat loses cleanly instead of overfilling the roster.
type JoinEventUseCase struct {
	eventRepo event.Repository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewJoinEventUseCase(eventRepo event.Repository, userRepo user.Repository, logger logger.Interface) *JoinEventUseCase {
	return &JoinEventUseCase{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *JoinEventUseCase) Execute(ctx context.Context, cmd JoinEventCommand) (*EventDTO, error) {
	if err := uc.eventRepo.AddVolunteer(ctx, cmd.EventID, cmd.UserID); err != nil {
		switch {
		case stderrors.Is(err, event.ErrAlreadyEnrolled):
			return nil, errors.NewConflictError("you are already enrolled in this event")
		case stderrors.Is(err, event.ErrEventFull):
			return nil, errors.NewConflictError("this event is full")
		case errors.IsNotFoundError(err):
			return nil, err
		default:
			uc.logger.Errorw("failed to join event", "event_id", cmd.EventID, "user_id", cmd.UserID, "error", err)
			return nil, fmt.Errorf("failed to join event: %w", err)
		}
	}

	uc.logger.Infow("volunteer joined event", "event_id", cmd.EventID, "user_id", cmd.UserID)

	return uc.reload(ctx, cmd.EventID)
}

func (uc *JoinEventUseCase) reload(ctx context.Context, eventID uint) (*EventDTO, error) {
	updatedEvent, err := uc.eventRepo.GetByID(ctx, eventID)
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
