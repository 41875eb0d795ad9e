package usecases

import (
	"context"
	"fmt"

	"volunteerhub/internal/domain/event"
	"volunteerhub/internal/domain/user"
	"volunteerhub/internal/shared/errors"
	"volunteerhub/internal/shared/logger"
)

type GetEventQuery struct {
	EventID uint
}

type GetEventUseCase struct {
	eventRepo event.Repository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewGetEventUseCase(eventRepo event.Repository, userRepo user.Repository, logger logger.Interface) *GetEventUseCase {
	return &GetEventUseCase{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *GetEventUseCase) Execute(ctx context.Context, query GetEventQuery) (*EventDTO, error) {
	existingEvent, err := uc.eventRepo.GetByID(ctx, query.EventID)
	if err != nil {
		uc.logger.Errorw("failed to get event", "event_id", query.EventID, "error", err)
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if existingEvent == nil {
		return nil, errors.NewNotFoundError("event not found")
	}

	users, err := hydrateUsers(ctx, uc.userRepo, []*event.Event{existingEvent})
	if err != nil {
		uc.logger.Errorw("failed to resolve volunteers", "event_id", query.EventID, "error", err)
		return nil, err
	}

	return toEventDTO(existingEvent, users), nil
}
