package usecases

import (
	"context"
	"fmt"

	"volunteerhub/internal/domain/event"
	"volunteerhub/internal/domain/user"
	"volunteerhub/internal/shared/logger"
)

type ListEventsUseCase struct {
	eventRepo event.Repository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewListEventsUseCase(eventRepo event.Repository, userRepo user.Repository, logger logger.Interface) *ListEventsUseCase {
	return &ListEventsUseCase{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *ListEventsUseCase) Execute(ctx context.Context) ([]*EventDTO, error) {
	events, err := uc.eventRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list events", "error", err)
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	users, err := hydrateUsers(ctx, uc.userRepo, events)
	if err != nil {
		uc.logger.Errorw("failed to resolve volunteers", "error", err)
		return nil, err
	}

	dtos := make([]*EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, toEventDTO(e, users))
	}
	return dtos, nil
}
