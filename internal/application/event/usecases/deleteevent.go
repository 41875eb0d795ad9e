package usecases

import (
	"context"
	"fmt"

	"volunteerhub/internal/domain/event"
	"volunteerhub/internal/shared/errors"
	"volunteerhub/internal/shared/logger"
)

type DeleteEventCommand struct {
	EventID uint
}

type DeleteEventUseCase struct {
	eventRepo event.Repository
	logger    logger.Interface
}

func NewDeleteEventUseCase(eventRepo event.Repository, logger logger.Interface) *DeleteEventUseCase {
	return &DeleteEventUseCase{
		eventRepo: eventRepo,
		logger:    logger,
	}
}

func (uc *DeleteEventUseCase) Execute(ctx context.Context, cmd DeleteEventCommand) error {
	existingEvent, err := uc.eventRepo.GetByID(ctx, cmd.EventID)
	if err != nil {
		uc.logger.Errorw("failed to get event", "event_id", cmd.EventID, "error", err)
		return fmt.Errorf("failed to get event: %w", err)
	}
	if existingEvent == nil {
		return errors.NewNotFoundError("event not found")
	}

	if err := uc.eventRepo.Delete(ctx, cmd.EventID); err != nil {
		uc.logger.Errorw("failed to delete event", "event_id", cmd.EventID, "error", err)
		return fmt.Errorf("failed to delete event: %w", err)
	}

	uc.logger.Infow("event deleted", "event_id", cmd.EventID)
	return nil
}
