package usecases

import (
	"context"
	"fmt"
	"time"

	"volunteerhub/internal/domain/event"
	"volunteerhub/internal/shared/errors"
	"volunteerhub/internal/shared/logger"
)

type CreateEventCommand struct {
	Title         string
	Description   string
	Date          string
	Time          string
	Location      string
	Category      string
	MaxVolunteers int
}

type CreateEventUseCase struct {
	eventRepo event.Repository
	logger    logger.Interface
}

func NewCreateEventUseCase(eventRepo event.Repository, logger logger.Interface) *CreateEventUseCase {
	return &CreateEventUseCase{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

func (uc *CreateEventUseCase) Execute(ctx context.Context, cmd CreateEventCommand) (*EventDTO, error) {
	date, err := time.Parse("2006-01-02", cmd.Date)
	if err != nil {
		return nil, errors.NewValidationError("date must be in YYYY-MM-DD format")
	}

	newEvent, err := event.NewEvent(cmd.Title, cmd.Description, date, cmd.Time, cmd.Location, cmd.Category, cmd.MaxVolunteers)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.eventRepo.Create(ctx, newEvent); err != nil {
		uc.logger.Errorw("failed to create event", "title", cmd.Title, "error", err)
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	uc.logger.Infow("event created", "event_id", newEvent.ID(), "title", newEvent.Title())

	return toEventDTO(newEvent, nil), nil
}
