package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"volunteerhub/internal/domain/event"
	"volunteerhub/internal/domain/user"
	"volunteerhub/internal/shared/errors"
	"volunteerhub/internal/shared/logger"
)

type UpdateEventCommand struct {
	EventID       uint
	Title         string
	Description   string
	Date          string
	Time          string
	Location      string
	Category      string
	MaxVolunteers int
}

type UpdateEventUseCase struct {
	eventRepo event.Repository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewUpdateEventUseCase(eventRepo event.Repository, userRepo user.Repository, logger logger.Interface) *UpdateEventUseCase {
	return &UpdateEventUseCase{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *UpdateEventUseCase) Execute(ctx context.Context, cmd UpdateEventCommand) (*EventDTO, error) {
	existingEvent, err := uc.eventRepo.GetByID(ctx, cmd.EventID)
	if err != nil {
		uc.logger.Errorw("failed to get event", "event_id", cmd.EventID, "error", err)
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if existingEvent == nil {
		return nil, errors.NewNotFoundError("event not found")
	}

	date, err := time.Parse("2006-01-02", cmd.Date)
	if err != nil {
		return nil, errors.NewValidationError("date must be in YYYY-MM-DD format")
	}

	if err := existingEvent.Update(cmd.Title, cmd.Description, date, cmd.Time, cmd.Location, cmd.Category, cmd.MaxVolunteers); err != nil {
		if stderrors.Is(err, event.ErrCapacityBelowEnrollment) {
			return nil, errors.NewConflictError(err.Error())
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.eventRepo.Update(ctx, existingEvent); err != nil {
		uc.logger.Errorw("failed to update event", "event_id", cmd.EventID, "error", err)
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	users, err := hydrateUsers(ctx, uc.userRepo, []*event.Event{existingEvent})
	if err != nil {
		uc.logger.Errorw("failed to resolve volunteers", "event_id", cmd.EventID, "error", err)
		return nil, err
	}

	uc.logger.Infow("event updated", "event_id", cmd.EventID)

	return toEventDTO(existingEvent, users), nil
}
